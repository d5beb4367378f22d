package repo

import (
	"context"

	"GiftKiosk/internal/model"

	"gorm.io/gorm"
)

// RecordRepository — журнал выдачи подарков.
type RecordRepository interface {
	Create(ctx context.Context, rec *model.SelectionRecord) error
	// List возвращает записи от новых к старым.
	List(ctx context.Context) ([]model.SelectionRecord, error)
	Delete(ctx context.Context, id string) error
}

type recordRepo struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepo{db: db}
}

func (r *recordRepo) Create(ctx context.Context, rec *model.SelectionRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recordRepo) List(ctx context.Context) ([]model.SelectionRecord, error) {
	var recs []model.SelectionRecord
	if err := r.db.WithContext(ctx).Order("created_at desc, id asc").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *recordRepo) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&model.SelectionRecord{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
