// Package session хранит флаг админа на стороне CLI.
//
// Флаг читается с диска один раз при старте и дальше передаётся через context.
// Это лишь подсказка клиенту: решение «админ или нет» всегда принимает сервер.
package session

import (
	"context"
	"sync"

	"GiftKiosk/internal/cli/repo"
)

type Provider struct {
	mu     sync.RWMutex
	store  repo.SessionStore
	cookie string
}

// Load создаёт провайдер и подтягивает сохранённую cookie. Ошибки чтения
// означают «не админ».
func Load(store repo.SessionStore) *Provider {
	p := &Provider{store: store}
	if c, err := store.Load(); err == nil {
		p.cookie = c
	}
	return p
}

func (p *Provider) Cookie() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cookie
}

func (p *Provider) IsAdmin() bool { return p.Cookie() != "" }

// Set запоминает cookie в памяти и на диске.
func (p *Provider) Set(cookie string) error {
	if err := p.store.Save(cookie); err != nil {
		return err
	}
	p.mu.Lock()
	p.cookie = cookie
	p.mu.Unlock()
	return nil
}

// Clear сбрасывает флаг. Память сбрасывается даже при ошибке диска.
func (p *Provider) Clear() error {
	p.mu.Lock()
	p.cookie = ""
	p.mu.Unlock()
	return p.store.Clear()
}

type ctxKey struct{}

func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

func FromContext(ctx context.Context) (*Provider, bool) {
	p, ok := ctx.Value(ctxKey{}).(*Provider)
	return p, ok && p != nil
}
