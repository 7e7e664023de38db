package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App != "dev" || cfg.Port != 8080 {
		t.Errorf("app/port = %q/%d", cfg.App, cfg.Port)
	}
	if cfg.DBMigrationsDir != "migrations" || cfg.PostgresMigrationsDir != "migrations/postgres" {
		t.Errorf("migration dirs = %q, %q", cfg.DBMigrationsDir, cfg.PostgresMigrationsDir)
	}
	if !cfg.SeedDemo || cfg.SeedCount != 40 {
		t.Errorf("seed = %v/%d, want true/40", cfg.SeedDemo, cfg.SeedCount)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP", " PROD ")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", " data/matches.db ")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.IsProd() {
		t.Errorf("App = %q, want prod", cfg.App)
	}
	if cfg.Port != 9090 || cfg.DBPath != "data/matches.db" {
		t.Errorf("port/db = %d/%q", cfg.Port, cfg.DBPath)
	}
	if cfg.SeedDemo {
		t.Error("demo seeding should default to off in prod")
	}
	logger := cfg.NewLogger()
	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v", logger.GetLevel())
	}
	if _, ok := logger.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("formatter = %T, want JSON", logger.Formatter)
	}
}

func TestLoadSeedOverride(t *testing.T) {
	t.Setenv("APP", "prod")
	t.Setenv("SEED_DEMO", "true")
	t.Setenv("SEED_COUNT", "5")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.SeedDemo || cfg.SeedCount != 5 {
		t.Errorf("seed = %v/%d, want true/5", cfg.SeedDemo, cfg.SeedCount)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "port too large", key: "PORT", val: "70000"},
		{name: "port zero", key: "PORT", val: "0"},
		{name: "unknown level", key: "LOG_LEVEL", val: "loud"},
		{name: "unknown format", key: "LOG_FORMAT", val: "xml"},
		{name: "negative seed count", key: "SEED_COUNT", val: "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			if _, err := load(viper.New()); err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.val)
			}
		})
	}
}
