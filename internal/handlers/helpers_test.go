package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"GiftKiosk/internal/config"
	"GiftKiosk/internal/handlers"
	"GiftKiosk/internal/model"
	"GiftKiosk/internal/repo"
	"GiftKiosk/internal/service"
	"GiftKiosk/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testPassword = "kiosk-pass"

type testEnv struct {
	srv    *httptest.Server
	client *http.Client
	items  repo.ItemRepository
	cfg    *config.Config
}

// newTestEnv поднимает весь HTTP-стек поверх in-memory SQLite и локального хранилища картинок.
func newTestEnv(t *testing.T, opts ...func(*config.Config)) *testEnv {
	t.Helper()

	db, err := repo.InitDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	sqlDB, _ := db.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })

	cfg := &config.Config{
		AuthSecret:    "test-secret",
		AdminPassword: testPassword,
		ImageStore:    config.ImageLocal,
		ImageDir:      t.TempDir(),
		ImageMaxMB:    1,
	}
	for _, o := range opts {
		o(cfg)
	}
	images, err := storage.NewLocalStore(cfg.ImageDir, "/images")
	require.NoError(t, err)

	logger := zap.NewNop().Sugar()
	items := repo.NewItemRepository(db)
	svc := handlers.Services{
		Catalog:   service.NewCatalogService(items, images, logger),
		Selection: service.NewSelectionService(items, repo.NewRecordRepository(db), images, logger),
		Locations: service.NewLocationService(repo.NewLocationRepository(db), logger),
		Admin:     service.NewAdminService(repo.NewSettingRepository(db), cfg.AdminPassword, logger),
	}
	h := handlers.NewHandler(svc, logger, cfg)

	srv := httptest.NewServer(h.Router)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testEnv{srv: srv, client: &http.Client{Jar: jar}, items: items, cfg: cfg}
}

func (e *testEnv) seed(t *testing.T, items ...model.GiftItem) []model.GiftItem {
	t.Helper()
	out := make([]model.GiftItem, 0, len(items))
	for i := range items {
		it := items[i]
		require.NoError(t, e.items.Create(context.Background(), &it))
		out = append(out, it)
	}
	return out
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, e.srv.URL+path, rdr)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (e *testEnv) login(t *testing.T) {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/admin/login", map[string]string{"password": testPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func (e *testEnv) postItem(t *testing.T, fields map[string]string, fileName string, content []byte) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if content != nil {
		fw, err := mw.CreateFormFile("image", fileName)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, e.srv.URL+"/api/admin/items", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := e.client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
