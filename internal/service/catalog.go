package service

import (
	"context"
	"fmt"
	"strings"

	"GiftKiosk/internal/catalog"
	"GiftKiosk/internal/model"
	"GiftKiosk/internal/repo"
	"GiftKiosk/internal/storage"

	"go.uber.org/zap"
)

// CatalogService — каталог подарков: выдача киоску и админские правки.
type CatalogService struct {
	items  repo.ItemRepository
	images storage.ImageStore
	logger *zap.SugaredLogger
}

func NewCatalogService(items repo.ItemRepository, images storage.ImageStore, logger *zap.SugaredLogger) *CatalogService {
	return &CatalogService{items: items, images: images, logger: logger}
}

// NewItem — данные для добавления позиции.
type NewItem struct {
	Name        string
	Category    model.Category
	Description string
	Image       *storage.Upload
}

// FetchVisible возвращает видимый каталог в порядке (category, sort_order).
// Порядок хранилища не считаем гарантированным и досортировываем сами.
func (s *CatalogService) FetchVisible(ctx context.Context) ([]model.GiftItem, error) {
	items, err := s.items.ListVisible(ctx)
	if err != nil {
		return nil, fmt.Errorf("list visible items: %w", err)
	}
	items = catalog.Visible(items)
	signImages(ctx, s.images, items, s.logger)
	return items, nil
}

// ListAll — все позиции, включая скрытые.
func (s *CatalogService) ListAll(ctx context.Context) ([]model.GiftItem, error) {
	items, err := s.items.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	catalog.Sort(items)
	signImages(ctx, s.images, items, s.logger)
	return items, nil
}

// signImages подставляет свежие ссылки картинкам, у которых в базе лежит только ключ.
func signImages(ctx context.Context, images storage.ImageStore, items []model.GiftItem, logger *zap.SugaredLogger) {
	for i := range items {
		signImage(ctx, images, &items[i], logger)
	}
}

func signImage(ctx context.Context, images storage.ImageStore, it *model.GiftItem, logger *zap.SugaredLogger) {
	signer, ok := images.(storage.URLSigner)
	if !ok || it.ImageURL != "" || it.ImagePublicID == "" {
		return
	}
	u, err := signer.SignURL(ctx, it.ImagePublicID)
	if err != nil {
		// позиция уходит без картинки, каталог не падает
		logger.Warnw("sign image url failed", "id", it.ID, "key", it.ImagePublicID, "error", err)
		return
	}
	it.ImageURL = u
}

// AddItem сначала загружает картинку, и только потом создаёт позицию.
// Если загрузка не удалась, позиция не создаётся.
func (s *CatalogService) AddItem(ctx context.Context, in NewItem) (*model.GiftItem, Mutation, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, Mutation{}, ErrEmptyName
	}
	if !in.Category.Valid() {
		return nil, Mutation{}, ErrBadCategory
	}

	item := &model.GiftItem{
		Name:          name,
		Category:      in.Category,
		Description:   strings.TrimSpace(in.Description),
		Visible:       true,
		AllowMultiple: false,
	}

	if in.Image != nil {
		stored, err := s.images.Put(ctx, *in.Image)
		if err != nil {
			s.logger.Errorw("AddItem: image upload failed", "name", name, "error", err)
			return nil, Mutation{}, fmt.Errorf("%w: %v", ErrImageUpload, err)
		}
		item.ImageURL = stored.URL
		item.ImagePublicID = stored.Key
	}

	maxOrder, err := s.items.MaxSortOrder(ctx, in.Category)
	if err == nil {
		item.SortOrder = maxOrder + 1
		err = s.items.Create(ctx, item)
	}
	if err != nil {
		s.rollbackImage(ctx, item.ImagePublicID)
		return nil, Mutation{}, fmt.Errorf("create item: %w", err)
	}

	signImage(ctx, s.images, item, s.logger)
	s.logger.Infow("item added", "id", item.ID, "name", item.Name, "category", item.Category, "sort_order", item.SortOrder)
	return item, reload, nil
}

func (s *CatalogService) rollbackImage(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.images.Remove(ctx, key); err != nil {
		s.logger.Warnw("image rollback failed", "key", key, "error", err)
	}
}

// UpdateItem — частичное обновление полей позиции.
func (s *CatalogService) UpdateItem(ctx context.Context, id string, patch model.ItemPatch) (*model.GiftItem, Mutation, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, Mutation{}, ErrEmptyName
		}
		patch.Name = &name
	}
	item, err := s.items.Update(ctx, id, patch)
	if err != nil {
		return nil, Mutation{}, err
	}
	signImage(ctx, s.images, item, s.logger)
	s.logger.Infow("item updated", "id", id, "fields", len(patch.Fields()))
	return item, reload, nil
}

// DeleteItem удаляет позицию. sort_order остальных не пересчитывается:
// для показа нужен только относительный порядок. Выданные записи хранят имя строкой и не страдают.
func (s *CatalogService) DeleteItem(ctx context.Context, id string) (Mutation, error) {
	if err := s.items.Delete(ctx, id); err != nil {
		return Mutation{}, err
	}
	s.logger.Infow("item deleted", "id", id)
	return reload, nil
}

// Reorder переносит позицию внутри категории (индексы с нуля, в порядке показа)
// и пишет новую сплошную нумерацию одной пачкой. При ошибке записи клиент всё равно
// получает Invalidate: надо перечитать каталог, чтобы увидеть фактическое состояние.
func (s *CatalogService) Reorder(ctx context.Context, c model.Category, from, to int) ([]catalog.Assignment, Mutation, error) {
	if !c.Valid() {
		return nil, Mutation{}, ErrBadCategory
	}
	all, err := s.items.ListAll(ctx)
	if err != nil {
		return nil, Mutation{}, fmt.Errorf("list items: %w", err)
	}
	assignments, err := catalog.Reorder(catalog.InCategory(all, c), from, to)
	if err != nil {
		return nil, Mutation{}, err
	}
	if err := s.items.UpdateSortOrders(ctx, assignments); err != nil {
		s.logger.Errorw("Reorder: commit failed", "category", c, "from", from, "to", to, "error", err)
		return nil, reload, fmt.Errorf("%w: %v", ErrReorderCommit, err)
	}
	s.logger.Infow("category reordered", "category", c, "from", from, "to", to)
	return assignments, reload, nil
}
