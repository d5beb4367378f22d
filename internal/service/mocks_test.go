package service

import (
	"context"

	"GiftKiosk/internal/catalog"
	"GiftKiosk/internal/model"
	"GiftKiosk/internal/repo"
	"GiftKiosk/internal/storage"

	"github.com/stretchr/testify/mock"
)

// мок для repo.ItemRepository
type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) ListVisible(ctx context.Context) ([]model.GiftItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.GiftItem)
	return items, args.Error(1)
}

func (m *mockItemRepo) ListAll(ctx context.Context) ([]model.GiftItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.GiftItem)
	return items, args.Error(1)
}

func (m *mockItemRepo) GetByID(ctx context.Context, id string) (*model.GiftItem, error) {
	args := m.Called(ctx, id)
	if it, ok := args.Get(0).(*model.GiftItem); ok {
		return it, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) Create(ctx context.Context, item *model.GiftItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockItemRepo) Update(ctx context.Context, id string, patch model.ItemPatch) (*model.GiftItem, error) {
	args := m.Called(ctx, id, patch)
	if it, ok := args.Get(0).(*model.GiftItem); ok {
		return it, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockItemRepo) MaxSortOrder(ctx context.Context, c model.Category) (int, error) {
	args := m.Called(ctx, c)
	return args.Int(0), args.Error(1)
}

func (m *mockItemRepo) UpdateSortOrders(ctx context.Context, assignments []catalog.Assignment) error {
	return m.Called(ctx, assignments).Error(0)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)

// мок для repo.RecordRepository
type mockRecordRepo struct{ mock.Mock }

func (m *mockRecordRepo) Create(ctx context.Context, rec *model.SelectionRecord) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *mockRecordRepo) List(ctx context.Context) ([]model.SelectionRecord, error) {
	args := m.Called(ctx)
	recs, _ := args.Get(0).([]model.SelectionRecord)
	return recs, args.Error(1)
}

func (m *mockRecordRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.RecordRepository = (*mockRecordRepo)(nil)

// мок для repo.LocationRepository
type mockLocationRepo struct{ mock.Mock }

func (m *mockLocationRepo) Create(ctx context.Context, loc *model.Location) error {
	return m.Called(ctx, loc).Error(0)
}

func (m *mockLocationRepo) List(ctx context.Context) ([]model.Location, error) {
	args := m.Called(ctx)
	locs, _ := args.Get(0).([]model.Location)
	return locs, args.Error(1)
}

func (m *mockLocationRepo) GetByID(ctx context.Context, id string) (*model.Location, error) {
	args := m.Called(ctx, id)
	if l, ok := args.Get(0).(*model.Location); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.LocationRepository = (*mockLocationRepo)(nil)

// мок для repo.SettingRepository
type mockSettingRepo struct{ mock.Mock }

func (m *mockSettingRepo) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockSettingRepo) Set(ctx context.Context, key, value string) error {
	return m.Called(ctx, key, value).Error(0)
}

var _ repo.SettingRepository = (*mockSettingRepo)(nil)

// мок для storage.ImageStore
type mockImageStore struct{ mock.Mock }

func (m *mockImageStore) Put(ctx context.Context, up storage.Upload) (storage.Stored, error) {
	args := m.Called(ctx, up)
	st, _ := args.Get(0).(storage.Stored)
	return st, args.Error(1)
}

func (m *mockImageStore) Remove(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

var _ storage.ImageStore = (*mockImageStore)(nil)

// хранилище с временными ссылками, как S3 с presign
type mockSignedStore struct{ mockImageStore }

func (m *mockSignedStore) SignURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

var _ storage.URLSigner = (*mockSignedStore)(nil)
