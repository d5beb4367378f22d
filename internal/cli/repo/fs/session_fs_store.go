package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoSession — сохранённой сессии нет.
var ErrNoSession = errors.New("no stored session")

const sessionFile = "admin_session"

// SessionStore — файловое хранилище cookie админа для CLI.
// Пустой Dir означает <UserConfigDir>/giftkiosk.
type SessionStore struct {
	Dir string
}

func NewSessionStore(dir string) *SessionStore {
	return &SessionStore{Dir: dir}
}

func (s *SessionStore) dir() (string, error) {
	p := s.Dir
	if p == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		p = filepath.Join(base, "giftkiosk")
	}
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func (s *SessionStore) path() (string, error) {
	dir, err := s.dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, sessionFile), nil
}

// Save сохраняет cookie в файл.
func (s *SessionStore) Save(cookie string) error {
	if strings.TrimSpace(cookie) == "" {
		return errors.New("empty session cookie")
	}
	p, err := s.path()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(cookie), 0o600)
}

// Load читает cookie; отсутствующий или пустой файл даёт ErrNoSession.
func (s *SessionStore) Load() (string, error) {
	p, err := s.path()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", err
	}
	// обрезаем завершающие переводы строки/пробелы
	v := strings.TrimRight(string(b), " \t\r\n")
	if v == "" {
		return "", ErrNoSession
	}
	return v, nil
}

func (s *SessionStore) Clear() error {
	p, err := s.path()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
