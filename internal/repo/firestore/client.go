// Package firestore — реализация репозиториев киоска поверх Cloud Firestore.
// Коллекции совпадают с именами таблиц SQL-хранилища.
package firestore

import (
	"context"
	"errors"
	"fmt"

	"GiftKiosk/internal/repo"

	fstore "cloud.google.com/go/firestore"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	colItems     = "gift_items"
	colRecords   = "gift_selections"
	colLocations = "donation_locations"
	colSettings  = "settings"
)

// NewClient создаёт клиент Firestore. Пустой credentialsFile означает ADC;
// при заданном FIRESTORE_EMULATOR_HOST SDK сам уходит в эмулятор.
func NewClient(ctx context.Context, projectID, credentialsFile string) (*fstore.Client, error) {
	if projectID == "" {
		return nil, errors.New("firestore: project id is required")
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	c, err := fstore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore client: %w", err)
	}
	return c, nil
}

// mapErr сводит NotFound из gRPC к repo.ErrNotFound.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return repo.ErrNotFound
	}
	return err
}
