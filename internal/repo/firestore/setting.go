package firestore

import (
	"context"

	"GiftKiosk/internal/model"
	"GiftKiosk/internal/repo"

	fstore "cloud.google.com/go/firestore"
)

type settingRepo struct {
	client *fstore.Client
}

// NewSettingRepository хранит каждую настройку отдельным документом, id = ключ.
func NewSettingRepository(c *fstore.Client) repo.SettingRepository {
	return &settingRepo{client: c}
}

func (r *settingRepo) Get(ctx context.Context, key string) (string, error) {
	snap, err := r.client.Collection(colSettings).Doc(key).Get(ctx)
	if err != nil {
		return "", mapErr(err)
	}
	var s model.Setting
	if err := snap.DataTo(&s); err != nil {
		return "", err
	}
	return s.Value, nil
}

func (r *settingRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.client.Collection(colSettings).Doc(key).Set(ctx, model.Setting{Value: value})
	return err
}
