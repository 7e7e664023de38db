package store

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"badminton-app/internal/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// dialect holds what differs between the SQL backends.
type dialect struct {
	listQuery   string
	getQuery    string
	insertQuery string
	deleteQuery string
	// timeArg converts CreatedAt into the driver value for created_at.
	timeArg func(time.Time) any
}

// sqlStore implements Store over database/sql. Rows written by older
// versions of the app are normalized on read and skipped when unusable.
type sqlStore struct {
	db      *sql.DB
	dialect dialect
	logger  *logrus.Logger
}

func (s *sqlStore) ListMatches() ([]model.Match, error) {
	rows, err := s.db.Query(s.dialect.listQuery)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	matches := []model.Match{}
	for rows.Next() {
		match, err := s.scan(rows)
		if err != nil {
			s.logger.WithError(err).Warn("skipping unreadable match row")
			continue
		}
		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CreatedAt.Before(matches[j].CreatedAt)
	})
	return matches, nil
}

func (s *sqlStore) GetMatch(id string) (model.Match, bool) {
	match, err := s.scan(s.db.QueryRow(s.dialect.getQuery, id))
	if err != nil {
		return model.Match{}, false
	}
	return match, true
}

func (s *sqlStore) CreateMatch(match model.Match) (model.Match, error) {
	match, err := normalizeMatch(match)
	if err != nil {
		return model.Match{}, err
	}
	if match.ID == "" {
		match.ID = uuid.NewString()
	}
	if match.CreatedAt.IsZero() {
		match.CreatedAt = time.Now()
	}
	if _, err := s.db.Exec(s.dialect.insertQuery,
		match.ID, match.Player1, match.Player2, encodeSets(match.Sets), match.Winner, s.dialect.timeArg(match.CreatedAt),
	); err != nil {
		return model.Match{}, fmt.Errorf("insert match: %w", err)
	}
	return match, nil
}

func (s *sqlStore) DeleteMatch(id string) error {
	res, err := s.db.Exec(s.dialect.deleteQuery, id)
	if err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMatchNotFound
	}
	return nil
}

func (s *sqlStore) DeleteAllMatches() error {
	if _, err := s.db.Exec(`DELETE FROM matches`); err != nil {
		return fmt.Errorf("delete matches: %w", err)
	}
	return nil
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}

func (s *sqlStore) scan(row rowScanner) (model.Match, error) {
	var match model.Match
	var sets, winner sql.NullString
	var createdAt any
	if err := row.Scan(&match.ID, &match.Player1, &match.Player2, &sets, &winner, &createdAt); err != nil {
		return model.Match{}, err
	}
	match.CreatedAt = timeFromColumn(createdAt)
	decoded, err := decodeSets(sets.String)
	if err != nil {
		return model.Match{}, fmt.Errorf("match %s: %w", match.ID, err)
	}
	match.Sets = decoded
	match.Winner = winner.String
	return normalizeMatch(match)
}

// timeFromColumn accepts native timestamps as well as the text layouts
// SQLite rows have been written with. Unknown values read as the zero time.
func timeFromColumn(value any) time.Time {
	switch v := value.(type) {
	case time.Time:
		return v
	case []byte:
		return parseTimeText(string(v))
	case string:
		return parseTimeText(v)
	}
	return time.Time{}
}

func parseTimeText(value string) time.Time {
	value = strings.TrimSpace(value)
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func loggerOrDefault(logger *logrus.Logger) *logrus.Logger {
	if logger == nil {
		return logrus.StandardLogger()
	}
	return logger
}
