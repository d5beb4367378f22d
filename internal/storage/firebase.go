package storage

import (
	"context"
	"errors"
	"fmt"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// FirebaseStore — картинки в бакете Firebase Storage.
type FirebaseStore struct {
	bucket     *gcs.BucketHandle
	bucketName string
}

func NewFirebaseStore(ctx context.Context, projectID, bucket, credentialsFile string) (*FirebaseStore, error) {
	if bucket == "" {
		return nil, errors.New("firebase bucket is empty")
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID, StorageBucket: bucket}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}
	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase storage: %w", err)
	}
	b, err := client.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("firebase bucket: %w", err)
	}
	return &FirebaseStore{bucket: b, bucketName: bucket}, nil
}

func (s *FirebaseStore) Put(ctx context.Context, up Upload) (Stored, error) {
	w := s.bucket.Object(up.Key).NewWriter(ctx)
	w.ContentType = up.ContentType
	if _, err := w.Write(up.Content); err != nil {
		_ = w.Close()
		return Stored{}, fmt.Errorf("firebase write: %w", err)
	}
	if err := w.Close(); err != nil {
		return Stored{}, fmt.Errorf("firebase write: %w", err)
	}
	return Stored{
		URL: fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, up.Key),
		Key: up.Key,
	}, nil
}

func (s *FirebaseStore) Remove(ctx context.Context, key string) error {
	if err := s.bucket.Object(key).Delete(ctx); err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
		return fmt.Errorf("firebase delete: %w", err)
	}
	return nil
}
