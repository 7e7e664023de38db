package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                   string `mapstructure:"app"`
	Port                  int    `mapstructure:"port"`
	DBPath                string `mapstructure:"db_path"`
	DBMigrationsDir       string `mapstructure:"db_migrations_dir"`
	PostgresDSN           string `mapstructure:"postgres_dsn"`
	PostgresMigrationsDir string `mapstructure:"postgres_migrations_dir"`
	LogLevel              string `mapstructure:"log_level"`
	LogFormat             string `mapstructure:"log_format"`
	SeedDemo              bool   `mapstructure:"seed_demo"`
	SeedCount             int    `mapstructure:"seed_count"`
}

// Load reads .env files (outside Lambda), an optional config/config.yaml and
// the environment, which wins over both.
func Load() (*Config, error) {
	if !InLambda() {
		_ = godotenv.Load(".env", ".env.local")
	}
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("app", "dev")
	v.SetDefault("port", 8080)
	v.SetDefault("db_path", "")
	v.SetDefault("db_migrations_dir", "migrations")
	v.SetDefault("postgres_dsn", "")
	v.SetDefault("postgres_migrations_dir", "migrations/postgres")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("seed_count", 40)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.App = strings.ToLower(strings.TrimSpace(cfg.App))
	cfg.DBPath = strings.TrimSpace(cfg.DBPath)
	cfg.PostgresDSN = strings.TrimSpace(cfg.PostgresDSN)
	if v.IsSet("seed_demo") {
		cfg.SeedDemo = v.GetBool("seed_demo")
	} else {
		cfg.SeedDemo = !cfg.IsProd()
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	if c.SeedCount < 0 {
		return fmt.Errorf("SEED_COUNT must not be negative, got %d", c.SeedCount)
	}
	return nil
}

func (c *Config) IsProd() bool {
	return c.App == "prod"
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// NewLogger builds the process logger from the log settings.
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	if c.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

func InLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}
