package main

import (
	"context"
	"fmt"

	"GiftKiosk/internal/config"
	"GiftKiosk/internal/repo"
	fsrepo "GiftKiosk/internal/repo/firestore"
	"GiftKiosk/internal/storage"
)

// stores — набор репозиториев выбранного бэкенда.
type stores struct {
	items     repo.ItemRepository
	records   repo.RecordRepository
	locations repo.LocationRepository
	settings  repo.SettingRepository
	close     func()
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	if cfg.StoreBackend == config.StoreFirestore {
		client, err := fsrepo.NewClient(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentials)
		if err != nil {
			return nil, err
		}
		return &stores{
			items:     fsrepo.NewItemRepository(client),
			records:   fsrepo.NewRecordRepository(client),
			locations: fsrepo.NewLocationRepository(client),
			settings:  fsrepo.NewSettingRepository(client),
			close:     func() { _ = client.Close() },
		}, nil
	}

	db, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql handle: %w", err)
	}
	return &stores{
		items:     repo.NewItemRepository(db),
		records:   repo.NewRecordRepository(db),
		locations: repo.NewLocationRepository(db),
		settings:  repo.NewSettingRepository(db),
		close:     func() { _ = sqlDB.Close() },
	}, nil
}

func openImageStore(ctx context.Context, cfg *config.Config) (storage.ImageStore, error) {
	switch cfg.ImageStore {
	case config.ImageCloudinary:
		return storage.NewCloudinaryStore(cfg.CloudinaryURL, "gift-kiosk")
	case config.ImageS3:
		return storage.NewS3Store(storage.S3Options{
			Region:          cfg.AWSRegion,
			Bucket:          cfg.AWSS3Bucket,
			Endpoint:        cfg.AWSS3Endpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
			Presign:         cfg.AWSS3Presign,
			PresignLifetime: cfg.AWSS3URLLifetime,
		})
	case config.ImageFirebase:
		return storage.NewFirebaseStore(ctx, cfg.FirebaseProjectID, cfg.FirebaseBucket, cfg.FirebaseCredentials)
	default:
		return storage.NewLocalStore(cfg.ImageDir, "/images")
	}
}
