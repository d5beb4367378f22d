package repo

import (
	"context"
	"fmt"

	"GiftKiosk/internal/catalog"
	"GiftKiosk/internal/model"

	"gorm.io/gorm"
)

// ItemRepository — доступ к каталогу подарков.
type ItemRepository interface {
	// ListVisible возвращает видимые позиции, отсортированные по (category, sort_order).
	ListVisible(ctx context.Context) ([]model.GiftItem, error)
	// ListAll возвращает все позиции для админки.
	ListAll(ctx context.Context) ([]model.GiftItem, error)
	GetByID(ctx context.Context, id string) (*model.GiftItem, error)
	Create(ctx context.Context, item *model.GiftItem) error
	// Update применяет частичное обновление и возвращает актуальную запись.
	Update(ctx context.Context, id string, patch model.ItemPatch) (*model.GiftItem, error)
	Delete(ctx context.Context, id string) error
	// MaxSortOrder — максимальный sort_order в категории, 0 для пустой.
	MaxSortOrder(ctx context.Context, c model.Category) (int, error)
	// UpdateSortOrders записывает пачку новых sort_order. Реализации обязаны
	// применять пачку атомарно: либо все значения, либо ни одного.
	UpdateSortOrders(ctx context.Context, assignments []catalog.Assignment) error
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт gorm-реализацию ItemRepository.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

const itemOrder = "category asc, sort_order asc, created_at asc, id asc"

func (r *itemRepo) ListVisible(ctx context.Context) ([]model.GiftItem, error) {
	var items []model.GiftItem
	if err := r.db.WithContext(ctx).Where("visible = ?", true).Order(itemOrder).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) ListAll(ctx context.Context) ([]model.GiftItem, error) {
	var items []model.GiftItem
	if err := r.db.WithContext(ctx).Order(itemOrder).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) GetByID(ctx context.Context, id string) (*model.GiftItem, error) {
	var it model.GiftItem
	if err := r.db.WithContext(ctx).First(&it, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &it, nil
}

func (r *itemRepo) Create(ctx context.Context, item *model.GiftItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepo) Update(ctx context.Context, id string, patch model.ItemPatch) (*model.GiftItem, error) {
	if !patch.Empty() {
		tx := r.db.WithContext(ctx).Model(&model.GiftItem{}).Where("id = ?", id).Updates(patch.Fields())
		if tx.Error != nil {
			return nil, tx.Error
		}
		if tx.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return r.GetByID(ctx, id)
}

func (r *itemRepo) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&model.GiftItem{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *itemRepo) MaxSortOrder(ctx context.Context, c model.Category) (int, error) {
	var maxOrder int
	err := r.db.WithContext(ctx).Model(&model.GiftItem{}).
		Select("COALESCE(MAX(sort_order), 0)").
		Where("category = ?", c).
		Scan(&maxOrder).Error
	return maxOrder, err
}

// UpdateSortOrders пишет все значения в одной транзакции.
func (r *itemRepo) UpdateSortOrders(ctx context.Context, assignments []catalog.Assignment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, a := range assignments {
			res := tx.Model(&model.GiftItem{}).Where("id = ?", a.ID).Update("sort_order", a.SortOrder)
			if res.Error != nil {
				return fmt.Errorf("update sort_order of %s: %w", a.ID, res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("update sort_order of %s: %w", a.ID, ErrNotFound)
			}
		}
		return nil
	})
}
