package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category — раздел каталога подарков, от него зависят правила выбора.
type Category string

const (
	CategoryA Category = "A"
	CategoryB Category = "B"
)

// Valid сообщает, является ли значение одной из двух известных категорий.
func (c Category) Valid() bool {
	return c == CategoryA || c == CategoryB
}

// GiftItem — позиция каталога подарков.
type GiftItem struct {
	ID            string    `gorm:"primaryKey;size:64" json:"id" firestore:"-"`
	Name          string    `gorm:"not null" json:"name" firestore:"name"`
	Category      Category  `gorm:"size:1;not null;index:idx_items_order,priority:1" json:"category" firestore:"category"`
	ImageURL      string    `json:"image_url,omitempty" firestore:"image_url"`
	ImagePublicID string    `json:"-" firestore:"image_public_id"`
	Description   string    `json:"description,omitempty" firestore:"description"`
	SortOrder     int       `gorm:"not null;index:idx_items_order,priority:2" json:"sort_order" firestore:"sort_order"`
	Visible       bool      `gorm:"not null" json:"visible" firestore:"visible"`
	AllowMultiple bool      `gorm:"not null" json:"allow_multiple" firestore:"allow_multiple"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at" firestore:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at" firestore:"updated_at"`
}

func (GiftItem) TableName() string { return "gift_items" }

// BeforeCreate выдаёт идентификатор, если его не задали снаружи.
func (i *GiftItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// ItemPatch — частичное обновление позиции: nil означает «не менять».
type ItemPatch struct {
	Name          *string `json:"name,omitempty"`
	Description   *string `json:"description,omitempty"`
	Visible       *bool   `json:"visible,omitempty"`
	AllowMultiple *bool   `json:"allow_multiple,omitempty"`
	SortOrder     *int    `json:"sort_order,omitempty"`
}

// Empty true, если в патче нет ни одного поля.
func (p ItemPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Visible == nil && p.AllowMultiple == nil && p.SortOrder == nil
}

// Fields возвращает изменяемые колонки в виде map, чтобы false и 0 тоже записывались.
func (p ItemPatch) Fields() map[string]any {
	f := make(map[string]any, 5)
	if p.Name != nil {
		f["name"] = *p.Name
	}
	if p.Description != nil {
		f["description"] = *p.Description
	}
	if p.Visible != nil {
		f["visible"] = *p.Visible
	}
	if p.AllowMultiple != nil {
		f["allow_multiple"] = *p.AllowMultiple
	}
	if p.SortOrder != nil {
		f["sort_order"] = *p.SortOrder
	}
	return f
}

// Apply применяет патч к копии позиции в памяти.
func (p ItemPatch) Apply(it GiftItem) GiftItem {
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.Description != nil {
		it.Description = *p.Description
	}
	if p.Visible != nil {
		it.Visible = *p.Visible
	}
	if p.AllowMultiple != nil {
		it.AllowMultiple = *p.AllowMultiple
	}
	if p.SortOrder != nil {
		it.SortOrder = *p.SortOrder
	}
	return it
}
