package selection

import (
	"strings"

	"GiftKiosk/internal/model"
)

// Session — незавершённый выбор посетителя: список имён и введённое имя.
// Живёт только на клиенте и сбрасывается после отправки или Reset.
type Session struct {
	catalog []model.GiftItem
	picks   []string
	name    string
}

// NewSession создаёт сессию поверх снимка видимого каталога.
func NewSession(catalog []model.GiftItem) *Session {
	return &Session{catalog: catalog}
}

// Catalog возвращает снимок каталога, с которым работает сессия.
func (s *Session) Catalog() []model.GiftItem { return s.catalog }

// Refresh подменяет снимок каталога и выбрасывает выбор, который больше не проходит правила.
func (s *Session) Refresh(catalog []model.GiftItem) {
	s.catalog = catalog
	var kept []string
	for _, name := range s.picks {
		kept = Add(catalog, kept, name)
	}
	s.picks = kept
}

// Selectable сообщает, можно ли сейчас выбрать позицию с таким именем.
func (s *Session) Selectable(name string) bool {
	return IsSelectable(s.catalog, s.picks, name)
}

// Pick добавляет подарок; false, если правила не позволяют.
func (s *Session) Pick(name string) bool {
	before := len(s.picks)
	s.picks = Add(s.catalog, s.picks, name)
	return len(s.picks) > before
}

// Drop убирает одно вхождение подарка.
func (s *Session) Drop(name string) bool {
	before := len(s.picks)
	s.picks = Remove(s.picks, name)
	return len(s.picks) < before
}

func (s *Session) SetName(name string) { s.name = strings.TrimSpace(name) }

func (s *Session) Name() string { return s.name }

// Picks возвращает копию текущего выбора.
func (s *Session) Picks() []string {
	return append([]string(nil), s.picks...)
}

func (s *Session) Summary() []Count { return Summarize(s.picks) }

// Ready — можно ли отправлять.
func (s *Session) Ready() bool { return CanSubmit(s.picks, s.name) }

// Reset очищает выбор и имя.
func (s *Session) Reset() {
	s.picks = nil
	s.name = ""
}
