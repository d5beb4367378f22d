package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"GiftKiosk/internal/model"
	"GiftKiosk/internal/repo"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminService проверяет пароль входа в админку. Пароль берётся из хранилища
// (bcrypt-хеш в settings), а если его там нет — из конфигурации.
type AdminService struct {
	settings repo.SettingRepository
	fallback string
	logger   *zap.SugaredLogger
}

func NewAdminService(settings repo.SettingRepository, fallbackPassword string, logger *zap.SugaredLogger) *AdminService {
	return &AdminService{settings: settings, fallback: fallbackPassword, logger: logger}
}

func (s *AdminService) CheckPassword(ctx context.Context, password string) error {
	hash, err := s.settings.Get(ctx, model.SettingAdminPasswordHash)
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
			return ErrWrongPassword
		}
		return nil
	case errors.Is(err, repo.ErrNotFound):
		if s.fallback == "" || subtle.ConstantTimeCompare([]byte(password), []byte(s.fallback)) != 1 {
			return ErrWrongPassword
		}
		return nil
	default:
		return fmt.Errorf("load admin password: %w", err)
	}
}

// ChangePassword сохраняет новый пароль в хранилище; дальше конфигурационный не используется.
func (s *AdminService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if newPassword == "" {
		return ErrEmptyPassword
	}
	if err := s.CheckPassword(ctx, oldPassword); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.settings.Set(ctx, model.SettingAdminPasswordHash, string(hash)); err != nil {
		return fmt.Errorf("save admin password: %w", err)
	}
	s.logger.Infow("admin password changed")
	return nil
}
