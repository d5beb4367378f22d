package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore складывает файлы в каталог, сервер отдаёт их по URLPrefix.
type LocalStore struct {
	Dir       string
	URLPrefix string
}

func NewLocalStore(dir, urlPrefix string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}
	return &LocalStore{Dir: dir, URLPrefix: strings.TrimRight(urlPrefix, "/")}, nil
}

func (s *LocalStore) path(key string) (string, error) {
	if key == "" || key != filepath.Base(key) {
		return "", fmt.Errorf("bad image key %q", key)
	}
	return filepath.Join(s.Dir, key), nil
}

func (s *LocalStore) Put(ctx context.Context, up Upload) (Stored, error) {
	p, err := s.path(up.Key)
	if err != nil {
		return Stored{}, err
	}
	if err := os.WriteFile(p, up.Content, 0o644); err != nil {
		return Stored{}, fmt.Errorf("write image: %w", err)
	}
	return Stored{URL: s.URLPrefix + "/" + up.Key, Key: up.Key}, nil
}

func (s *LocalStore) Remove(ctx context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
