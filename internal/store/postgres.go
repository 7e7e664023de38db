package store

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"
)

type PostgresStore struct {
	sqlStore
}

type PostgresOptions struct {
	Migrations    fs.FS
	MigrationsDir string
	Logger        *logrus.Logger
}

var postgresDialect = dialect{
	listQuery:   `SELECT id, player1, player2, sets, winner, created_at FROM matches ORDER BY created_at ASC, seq ASC`,
	getQuery:    `SELECT id, player1, player2, sets, winner, created_at FROM matches WHERE id = $1`,
	insertQuery: `INSERT INTO matches (id, player1, player2, sets, winner, created_at) VALUES ($1,$2,$3,$4,$5,$6)`,
	deleteQuery: `DELETE FROM matches WHERE id = $1`,
	timeArg: func(t time.Time) any {
		if t.IsZero() {
			return nil
		}
		return t
	},
}

func NewPostgresStore(dsn string, opts PostgresOptions) (*PostgresStore, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("postgres dsn is required")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	logger := loggerOrDefault(opts.Logger)
	m := migrator{
		db:          db,
		source:      migrationSource(opts.Migrations, opts.MigrationsDir, "migrations/postgres"),
		markApplied: `INSERT INTO schema_migrations (filename) VALUES ($1)`,
		logger:      logger,
	}
	if err := m.run(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &PostgresStore{sqlStore{db: db, dialect: postgresDialect, logger: logger}}, nil
}
