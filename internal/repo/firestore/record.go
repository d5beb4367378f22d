package firestore

import (
	"context"

	"GiftKiosk/internal/model"
	"GiftKiosk/internal/repo"

	fstore "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type recordRepo struct {
	client *fstore.Client
}

func NewRecordRepository(c *fstore.Client) repo.RecordRepository {
	return &recordRepo{client: c}
}

func (r *recordRepo) col() *fstore.CollectionRef { return r.client.Collection(colRecords) }

func (r *recordRepo) Create(ctx context.Context, rec *model.SelectionRecord) error {
	ref := r.col().NewDoc()
	if _, err := ref.Create(ctx, rec); err != nil {
		return err
	}
	rec.ID = ref.ID
	return nil
}

func (r *recordRepo) List(ctx context.Context) ([]model.SelectionRecord, error) {
	it := r.col().OrderBy("timestamp", fstore.Desc).Documents(ctx)
	defer it.Stop()
	var out []model.SelectionRecord
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var rec model.SelectionRecord
		if err := snap.DataTo(&rec); err != nil {
			return nil, err
		}
		rec.ID = snap.Ref.ID
		out = append(out, rec)
	}
	return out, nil
}

func (r *recordRepo) Delete(ctx context.Context, id string) error {
	_, err := r.col().Doc(id).Delete(ctx, fstore.Exists)
	return mapErr(err)
}
