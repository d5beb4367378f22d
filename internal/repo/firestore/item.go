package firestore

import (
	"context"
	"time"

	"GiftKiosk/internal/catalog"
	"GiftKiosk/internal/model"
	"GiftKiosk/internal/repo"

	fstore "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type itemRepo struct {
	client *fstore.Client
}

// NewItemRepository — Firestore-реализация repo.ItemRepository.
func NewItemRepository(c *fstore.Client) repo.ItemRepository {
	return &itemRepo{client: c}
}

func (r *itemRepo) col() *fstore.CollectionRef { return r.client.Collection(colItems) }

func readItems(it *fstore.DocumentIterator) ([]model.GiftItem, error) {
	defer it.Stop()
	var out []model.GiftItem
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var gi model.GiftItem
		if err := snap.DataTo(&gi); err != nil {
			return nil, err
		}
		gi.ID = snap.Ref.ID
		out = append(out, gi)
	}
	return out, nil
}

// ListVisible — фильтр на стороне Firestore, порядок на нашей стороне:
// так не нужен составной индекс (visible, category, sort_order).
func (r *itemRepo) ListVisible(ctx context.Context) ([]model.GiftItem, error) {
	items, err := readItems(r.col().Where("visible", "==", true).Documents(ctx))
	if err != nil {
		return nil, err
	}
	catalog.Sort(items)
	return items, nil
}

func (r *itemRepo) ListAll(ctx context.Context) ([]model.GiftItem, error) {
	items, err := readItems(r.col().Documents(ctx))
	if err != nil {
		return nil, err
	}
	catalog.Sort(items)
	return items, nil
}

func (r *itemRepo) GetByID(ctx context.Context, id string) (*model.GiftItem, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	var gi model.GiftItem
	if err := snap.DataTo(&gi); err != nil {
		return nil, err
	}
	gi.ID = snap.Ref.ID
	return &gi, nil
}

func (r *itemRepo) Create(ctx context.Context, item *model.GiftItem) error {
	ref := r.col().NewDoc()
	if item.ID != "" {
		ref = r.col().Doc(item.ID)
	}
	now := time.Now().UTC()
	item.CreatedAt, item.UpdatedAt = now, now
	if _, err := ref.Create(ctx, item); err != nil {
		return err
	}
	item.ID = ref.ID
	return nil
}

func (r *itemRepo) Update(ctx context.Context, id string, patch model.ItemPatch) (*model.GiftItem, error) {
	if !patch.Empty() {
		fields := patch.Fields()
		ups := make([]fstore.Update, 0, len(fields)+1)
		for path, v := range fields {
			ups = append(ups, fstore.Update{Path: path, Value: v})
		}
		ups = append(ups, fstore.Update{Path: "updated_at", Value: time.Now().UTC()})
		if _, err := r.col().Doc(id).Update(ctx, ups); err != nil {
			return nil, mapErr(err)
		}
	}
	return r.GetByID(ctx, id)
}

func (r *itemRepo) Delete(ctx context.Context, id string) error {
	_, err := r.col().Doc(id).Delete(ctx, fstore.Exists)
	return mapErr(err)
}

func (r *itemRepo) MaxSortOrder(ctx context.Context, c model.Category) (int, error) {
	items, err := readItems(r.col().Where("category", "==", string(c)).Documents(ctx))
	if err != nil {
		return 0, err
	}
	return catalog.NextSortOrder(items, c) - 1, nil
}

// UpdateSortOrders пишет пачку в одной транзакции Firestore.
func (r *itemRepo) UpdateSortOrders(ctx context.Context, assignments []catalog.Assignment) error {
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *fstore.Transaction) error {
		now := time.Now().UTC()
		for _, a := range assignments {
			err := tx.Update(r.col().Doc(a.ID), []fstore.Update{
				{Path: "sort_order", Value: a.SortOrder},
				{Path: "updated_at", Value: now},
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return mapErr(err)
}
