package main

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"badminton-app/internal/config"
	"badminton-app/internal/store"
	"badminton-app/internal/tournament"
	"badminton-app/internal/web"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

//go:embed templates/* templates/partials/* static/* static/css/*
var content embed.FS

//go:embed migrations/*.sql migrations/postgres/*.sql
var migrations embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	logger := cfg.NewLogger()

	templates, err := web.NewTemplates(content)
	if err != nil {
		logger.Fatalf("templates: %v", err)
	}

	appStore, err := openStore(cfg, logger)
	if err != nil {
		logger.Fatalf("store: %v", err)
	}
	defer appStore.Close()

	service := tournament.NewService(appStore, logger)
	server := web.NewServer(service, templates, logger)
	staticFS, err := fs.Sub(content, "static")
	if err != nil {
		logger.Fatalf("static fs: %v", err)
	}

	r := chi.NewRouter()
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	r.Mount("/", server.Routes())

	if config.InLambda() {
		logger.Info("starting in lambda mode")
		adapter := httpadapter.New(r)
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	if err := serve(cfg.Addr(), r, logger); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}

// openStore picks Postgres, then SQLite, then memory. Only the memory store
// gets demo matches.
func openStore(cfg *config.Config, logger *logrus.Logger) (store.Store, error) {
	var (
		appStore store.Store
		kind     string
		err      error
	)
	// Lambda bundles carry only the binary, so migrations come from the embed.
	var sqliteMigrations, postgresMigrations fs.FS
	if config.InLambda() {
		sqliteMigrations, _ = fs.Sub(migrations, "migrations")
		postgresMigrations, _ = fs.Sub(migrations, "migrations/postgres")
	}
	switch {
	case cfg.PostgresDSN != "":
		appStore, err = store.NewPostgresStore(cfg.PostgresDSN, store.PostgresOptions{
			Migrations:    postgresMigrations,
			MigrationsDir: cfg.PostgresMigrationsDir,
			Logger:        logger,
		})
		kind = "postgres"
	case cfg.DBPath != "":
		appStore, err = store.NewSQLiteStore(cfg.DBPath, store.SQLiteOptions{
			Migrations:    sqliteMigrations,
			MigrationsDir: cfg.DBMigrationsDir,
			Logger:        logger,
		})
		kind = "sqlite"
	default:
		appStore = store.NewMemoryStore()
		kind = "memory"
	}
	if err != nil {
		return nil, err
	}
	logger.WithField("store", kind).Info("store ready")

	if kind == "memory" && cfg.SeedDemo && cfg.SeedCount > 0 {
		if err := store.SeedDemoMatches(appStore, cfg.SeedCount); err != nil {
			return nil, err
		}
		logger.WithField("count", cfg.SeedCount).Info("seeded demo matches")
	}
	return appStore, nil
}

func serve(addr string, handler http.Handler, logger *logrus.Logger) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErrors := make(chan error, 1)
	go func() {
		logger.WithField("addr", addr).Info("starting server")
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		_ = srv.Close()
		return err
	}
	logger.Info("server shutdown complete")
	return nil
}
