package handlers

import (
	"net/http"
	"os"
	"slices"
	"time"

	"GiftKiosk/internal/config"
	"GiftKiosk/internal/middleware"
	"GiftKiosk/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// Services — сервисы, которые обслуживает HTTP-слой.
type Services struct {
	Catalog   *service.CatalogService
	Selection *service.SelectionService
	Locations *service.LocationService
	Admin     *service.AdminService
}

// NewHandler разводящий для хендлеров
func NewHandler(svc Services, logger *zap.SugaredLogger, cfg *config.Config) *Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.WithLogging)
	r.Use(chimw.Recoverer)
	// без CORS_ORIGINS браузер пускаем только с того же origin
	if origins := cfg.AllowedOrigins(); len(origins) > 0 {
		r.Use(cors.New(cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Content-Type", "Content-Encoding", "Accept-Encoding"},
			AllowCredentials: !slices.Contains(origins, "*"),
		}).Handler)
	}
	r.Use(middleware.WithGzip)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.WithAdminFlag(cfg.AuthSecret))

	kiosk := NewKioskHandler(svc.Catalog, svc.Selection, svc.Locations, logger)
	admin := NewAdminHandler(svc.Admin, logger, cfg)
	items := NewItemHandler(svc.Catalog, logger, cfg)
	records := NewRecordHandler(svc.Selection, logger)
	locations := NewLocationHandler(svc.Locations, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Kiosk routes
	r.Get("/api/catalog", kiosk.Catalog)
	r.Post("/api/selection/evaluate", kiosk.Evaluate)
	r.Post("/api/selections", kiosk.Submit)
	r.Get("/api/locations/{id}", kiosk.Location)

	// Admin session
	r.Post("/api/admin/login", admin.Login)
	r.Post("/api/admin/logout", admin.Logout)
	r.Get("/api/admin/status", admin.Status)

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)

		r.Put("/password", admin.ChangePassword)

		r.Get("/items", items.List)
		r.Post("/items", items.Create)
		r.Post("/items/reorder", items.Reorder)
		r.Patch("/items/{id}", items.Update)
		r.Delete("/items/{id}", items.Delete)

		r.Get("/records", records.List)
		r.Delete("/records/{id}", records.Delete)

		r.Get("/locations", locations.List)
		r.Post("/locations", locations.Create)
	})

	if cfg.ImageStore == config.ImageLocal {
		fs := http.StripPrefix("/images/", http.FileServer(fileOnlyFS{http.Dir(cfg.ImageDir)}))
		r.Handle("/images/*", fs)
	}

	return &Handler{Router: r}
}

// fileOnlyFS прячет каталоги, чтобы FileServer не строил листинг.
type fileOnlyFS struct{ http.FileSystem }

func (fs fileOnlyFS) Open(name string) (http.File, error) {
	f, err := fs.FileSystem.Open(name)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if st.IsDir() {
		_ = f.Close()
		return nil, os.ErrNotExist
	}
	return f, nil
}
