package store

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	sqlStore
}

type SQLiteOptions struct {
	// Migrations overrides MigrationsDir, e.g. with an embedded tree.
	Migrations    fs.FS
	MigrationsDir string
	Logger        *logrus.Logger
}

var sqliteDialect = dialect{
	// rowid keeps insertion order for rows sharing a timestamp.
	listQuery:   `SELECT id, player1, player2, sets, winner, created_at FROM matches ORDER BY rowid`,
	getQuery:    `SELECT id, player1, player2, sets, winner, created_at FROM matches WHERE id = ?`,
	insertQuery: `INSERT INTO matches (id, player1, player2, sets, winner, created_at) VALUES (?,?,?,?,?,?)`,
	deleteQuery: `DELETE FROM matches WHERE id = ?`,
	timeArg: func(t time.Time) any {
		if t.IsZero() {
			return nil
		}
		return t.UTC().Format(time.RFC3339Nano)
	},
}

func NewSQLiteStore(path string, opts SQLiteOptions) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one connection so ":memory:" stays a single database and writes serialize
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	logger := loggerOrDefault(opts.Logger)
	m := migrator{
		db:          db,
		source:      migrationSource(opts.Migrations, opts.MigrationsDir, "migrations"),
		markApplied: `INSERT INTO schema_migrations (filename) VALUES (?)`,
		logger:      logger,
	}
	if err := m.run(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{sqlStore{db: db, dialect: sqliteDialect, logger: logger}}, nil
}
