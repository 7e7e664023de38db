package store

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// migrationSource prefers an embedded tree and falls back to a directory on
// disk. A missing directory means there is nothing to apply.
func migrationSource(embedded fs.FS, dir, fallback string) fs.FS {
	if embedded != nil {
		return embedded
	}
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = fallback
	}
	return os.DirFS(dir)
}

type migrator struct {
	db          *sql.DB
	source      fs.FS
	markApplied string
	logger      *logrus.Logger
}

// run executes every pending *.sql file in name order, one transaction per
// file, and records it in schema_migrations.
func (m migrator) run() error {
	if _, err := m.db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
  filename TEXT PRIMARY KEY,
  installed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	names, err := fs.Glob(m.source, "*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	if len(names) == 0 {
		return nil
	}
	sort.Strings(names)

	done, err := m.applied()
	if err != nil {
		return err
	}
	for _, name := range names {
		if done[name] {
			continue
		}
		body, err := fs.ReadFile(m.source, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if strings.TrimSpace(string(body)) == "" {
			continue
		}
		if err := m.apply(name, string(body)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		m.logger.WithField("migration", name).Info("migration applied")
	}
	return nil
}

func (m migrator) applied() (map[string]bool, error) {
	rows, err := m.db.Query(`SELECT filename FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("load schema_migrations: %w", err)
	}
	defer rows.Close()

	done := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan schema_migrations: %w", err)
		}
		done[name] = true
	}
	return done, rows.Err()
}

func (m migrator) apply(name, body string) error {
	tx, err := m.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	if _, err := tx.Exec(body); err != nil {
		return err
	}
	if _, err := tx.Exec(m.markApplied, name); err != nil {
		return err
	}
	return tx.Commit()
}
