package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"beauty-storefront/internal/appstate"
	"beauty-storefront/internal/config"
	"beauty-storefront/internal/db"
	"beauty-storefront/internal/domain"
	"beauty-storefront/internal/httpserver"
	"beauty-storefront/internal/logging"
	"beauty-storefront/internal/migrate"
	categoryrepo "beauty-storefront/internal/repository/category"
	productrepo "beauty-storefront/internal/repository/product"
	"beauty-storefront/internal/seed"
	categorysvc "beauty-storefront/internal/service/category"
	productsvc "beauty-storefront/internal/service/product"
	"beauty-storefront/internal/service/session"
	"beauty-storefront/internal/service/voucher"
	"go.uber.org/zap"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	logger = logger.Named("api")
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	templates, err := loadVoucherCatalog(cfg.VoucherCatalogPath)
	if err != nil {
		logger.Fatal("load voucher catalog", zap.String("path", cfg.VoucherCatalogPath), zap.Error(err))
	}

	deps := httpserver.Deps{CORSOrigins: cfg.CORSAllowedOrigins}
	if cfg.DBConnString != "" {
		dbpool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatal("connect to db", zap.Error(err))
		}
		defer dbpool.Close()

		version, dirty, err := migrate.Version(ctx, dbpool)
		if err != nil {
			logger.Fatal("read schema version", zap.Error(err))
		}
		if version == 0 || dirty {
			logger.Warn("catalog schema not migrated, run cmd/migrate", zap.Uint("version", version), zap.Bool("dirty", dirty))
		}

		deps.ProductSvc = productsvc.New(productrepo.NewPostgres(dbpool, logger.Named("products")))
		deps.CategorySvc = categorysvc.New(categoryrepo.NewPostgres(dbpool, logger.Named("categories")))
		deps.Ready = dbpool.Ping
		logger.Info("serving catalog from postgres", zap.Uint("schema_version", version))
	} else {
		deps.ProductSvc = productsvc.New(productrepo.NewMemory(seed.Products()))
		deps.CategorySvc = categorysvc.New(categoryrepo.NewMemory(seed.Categories()))
		logger.Info("DB_DSN not set, serving built-in catalog from memory")
	}

	stateLogger := logger.Named("appstate")
	sessions := session.New(func() (*appstate.AppState, error) {
		return appstate.New(appstate.Options{
			Ledger: voucher.Options{
				Catalog:        templates,
				ProductIDBound: cfg.VoucherProductIDBound,
				Logger:         stateLogger,
			},
			RefreshInterval: cfg.VoucherRefreshInterval,
			Logger:          stateLogger,
		})
	}, session.Options{
		TTL:    cfg.SessionTTL,
		Logger: logger.Named("sessions"),
	})
	deps.Sessions = sessions

	janitorCtx, stopJanitor := context.WithCancel(ctx)
	janitorDone := make(chan struct{})
	go func() {
		defer close(janitorDone)
		sessions.Run(janitorCtx, cfg.SessionSweepInterval)
	}()

	srv, err := httpserver.New(cfg.HTTPAddr, logger.Named("http"), deps)
	if err != nil {
		logger.Fatal("init server", zap.Error(err))
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		logger.Error("server error", zap.Error(err))
	}

	stopJanitor()
	<-janitorDone

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	} else {
		logger.Info("server stopped")
	}
	sessions.Close()
}

// loadVoucherCatalog reads templates from path, or returns the embedded
// catalog when path is empty.
func loadVoucherCatalog(path string) ([]domain.VoucherTemplate, error) {
	if path == "" {
		return voucher.DefaultCatalog(), nil
	}
	return voucher.LoadCatalog(path)
}
