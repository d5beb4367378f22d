package repo

import (
	"context"

	"GiftKiosk/internal/model"

	"gorm.io/gorm"
)

// LocationRepository — пункты донорства.
type LocationRepository interface {
	Create(ctx context.Context, loc *model.Location) error
	List(ctx context.Context) ([]model.Location, error)
	GetByID(ctx context.Context, id string) (*model.Location, error)
}

type locationRepo struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepo{db: db}
}

func (r *locationRepo) Create(ctx context.Context, loc *model.Location) error {
	return r.db.WithContext(ctx).Create(loc).Error
}

func (r *locationRepo) List(ctx context.Context) ([]model.Location, error) {
	var locs []model.Location
	if err := r.db.WithContext(ctx).Order("name asc").Find(&locs).Error; err != nil {
		return nil, err
	}
	return locs, nil
}

func (r *locationRepo) GetByID(ctx context.Context, id string) (*model.Location, error) {
	var loc model.Location
	if err := r.db.WithContext(ctx).First(&loc, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &loc, nil
}
