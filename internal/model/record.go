package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SelectionRecord — завершённый выбор посетителя киоска. После создания не меняется.
type SelectionRecord struct {
	ID         string    `gorm:"primaryKey;size:64" json:"id" firestore:"-"`
	Name       string    `gorm:"not null" json:"name" firestore:"name"`
	Items      []string  `gorm:"type:text;serializer:json" json:"items" firestore:"items"`
	Timestamp  time.Time `gorm:"column:created_at;not null;index" json:"timestamp" firestore:"timestamp"`
	LocationID *string   `gorm:"size:64;index" json:"location_id,omitempty" firestore:"location_id,omitempty"`
}

func (SelectionRecord) TableName() string { return "gift_selections" }

func (r *SelectionRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// Location — пункт донорства, к которому может быть привязан киоск.
type Location struct {
	ID   string `gorm:"primaryKey;size:64" json:"id" firestore:"-"`
	Name string `gorm:"not null" json:"name" firestore:"name"`
}

func (Location) TableName() string { return "donation_locations" }

func (l *Location) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// Setting — пара ключ/значение для серверных настроек (например, хеш пароля админа).
type Setting struct {
	Key   string `gorm:"primaryKey;size:128" firestore:"-"`
	Value string `gorm:"not null" firestore:"value"`
}

func (Setting) TableName() string { return "settings" }

// SettingAdminPasswordHash — ключ bcrypt-хеша пароля администратора.
const SettingAdminPasswordHash = "admin_password_hash"
