package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Флаг админа запоминает, что пароль был введён верно. Пользователей нет.

const (
	AdminCookieName = "admin_session"
	adminSubject    = "kiosk-admin"
	adminTTL        = 12 * time.Hour
)

type ctxKey int

const adminKey ctxKey = iota

// SetAdminCookie выставляет подписанную cookie с флагом админа.
func SetAdminCookie(w http.ResponseWriter, secret string) error {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(adminTTL)),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     AdminCookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  now.Add(adminTTL),
	})
	return nil
}

// ClearAdminCookie снимает флаг.
func ClearAdminCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AdminCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

func parseAdminToken(raw, secret string) error {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return err
	}
	if claims.Subject != adminSubject {
		return errors.New("unexpected subject")
	}
	return nil
}

// WithAdminFlag кладёт флаг админа в контекст, если cookie валидна. Запрос без cookie
// проходит дальше как обычный посетитель киоска.
func WithAdminFlag(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(AdminCookieName)
			if err == nil && c.Value != "" {
				if perr := parseAdminToken(c.Value, secret); perr == nil {
					r = r.WithContext(context.WithValue(r.Context(), adminKey, true))
				} else {
					log.Debugw("admin cookie rejected", "error", perr)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IsAdmin сообщает, выставлен ли флаг админа для запроса.
func IsAdmin(ctx context.Context) bool {
	v, _ := ctx.Value(adminKey).(bool)
	return v
}

// RequireAdmin отвечает 403, если флага нет.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdmin(r.Context()) {
			http.Error(w, "admin only", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
