package repo

import (
	"context"

	"GiftKiosk/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingRepository — серверные настройки ключ/значение.
type SettingRepository interface {
	// Get возвращает ErrNotFound, если ключ не задан.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type settingRepo struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepo{db: db}
}

func (r *settingRepo) Get(ctx context.Context, key string) (string, error) {
	var s model.Setting
	if err := r.db.WithContext(ctx).First(&s, "key = ?", key).Error; err != nil {
		return "", notFound(err)
	}
	return s.Value, nil
}

// Set делает upsert по ключу.
func (r *settingRepo) Set(ctx context.Context, key, value string) error {
	s := &model.Setting{Key: key, Value: value}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(s).Error
}
