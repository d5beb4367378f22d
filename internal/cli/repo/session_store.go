package repo

// SessionStore — хранилище cookie админской сессии между запусками CLI.
type SessionStore interface {
	Save(cookie string) error
	Load() (string, error)
	Clear() error
}
