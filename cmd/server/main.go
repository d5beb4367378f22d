package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"GiftKiosk/internal/config"
	"GiftKiosk/internal/handlers"
	"GiftKiosk/internal/middleware"
	"GiftKiosk/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg)
	if err != nil {
		sugar.Fatalw("failed to initialize store", "backend", cfg.StoreBackend, "error", err)
	}
	defer st.close()

	images, err := openImageStore(ctx, cfg)
	if err != nil {
		sugar.Fatalw("failed to initialize image store", "backend", cfg.ImageStore, "error", err)
	}

	svc := handlers.Services{
		Catalog:   service.NewCatalogService(st.items, images, sugar),
		Selection: service.NewSelectionService(st.items, st.records, images, sugar),
		Locations: service.NewLocationService(st.locations, sugar),
		Admin:     service.NewAdminService(st.settings, cfg.AdminPassword, sugar),
	}
	h := handlers.NewHandler(svc, sugar, cfg)

	srv := &http.Server{
		Addr:         cfg.BaseURL,
		Handler:      h.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"StoreBackend", cfg.StoreBackend,
		"ImageStore", cfg.ImageStore,
	)
	sugar.Infow("Starting server", "addr", srv.Addr)

	go func() {
		<-ctx.Done()
		sugar.Infow("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("Server shutdown error", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugar.Fatalw("Server failed", "error", err)
	}
	sugar.Infow("Server stopped")
}
