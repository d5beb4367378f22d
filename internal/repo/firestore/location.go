package firestore

import (
	"context"

	"GiftKiosk/internal/model"
	"GiftKiosk/internal/repo"

	fstore "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type locationRepo struct {
	client *fstore.Client
}

func NewLocationRepository(c *fstore.Client) repo.LocationRepository {
	return &locationRepo{client: c}
}

func (r *locationRepo) col() *fstore.CollectionRef { return r.client.Collection(colLocations) }

func (r *locationRepo) Create(ctx context.Context, loc *model.Location) error {
	ref := r.col().NewDoc()
	if _, err := ref.Create(ctx, loc); err != nil {
		return err
	}
	loc.ID = ref.ID
	return nil
}

func (r *locationRepo) List(ctx context.Context) ([]model.Location, error) {
	it := r.col().OrderBy("name", fstore.Asc).Documents(ctx)
	defer it.Stop()
	var out []model.Location
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var loc model.Location
		if err := snap.DataTo(&loc); err != nil {
			return nil, err
		}
		loc.ID = snap.Ref.ID
		out = append(out, loc)
	}
	return out, nil
}

func (r *locationRepo) GetByID(ctx context.Context, id string) (*model.Location, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	var loc model.Location
	if err := snap.DataTo(&loc); err != nil {
		return nil, err
	}
	loc.ID = snap.Ref.ID
	return &loc, nil
}
