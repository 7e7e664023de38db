package store

import (
	"sort"
	"sync"
	"time"

	"badminton-app/internal/model"

	"github.com/google/uuid"
)

type memoryEntry struct {
	match model.Match
	seq   int
}

type MemoryStore struct {
	mu      sync.RWMutex
	matches map[string]memoryEntry
	nextSeq int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		matches: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) ListMatches() ([]model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]memoryEntry, 0, len(s.matches))
	for _, e := range s.matches {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].match.CreatedAt.Equal(entries[j].match.CreatedAt) {
			return entries[i].match.CreatedAt.Before(entries[j].match.CreatedAt)
		}
		return entries[i].seq < entries[j].seq
	})
	matches := make([]model.Match, 0, len(entries))
	for _, e := range entries {
		matches = append(matches, cloneMatch(e.match))
	}
	return matches, nil
}

func (s *MemoryStore) GetMatch(id string) (model.Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.matches[id]
	if !ok {
		return model.Match{}, false
	}
	return cloneMatch(e.match), true
}

func (s *MemoryStore) CreateMatch(match model.Match) (model.Match, error) {
	match, err := normalizeMatch(match)
	if err != nil {
		return model.Match{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if match.ID == "" {
		match.ID = uuid.NewString()
	}
	if match.CreatedAt.IsZero() {
		match.CreatedAt = time.Now()
	}
	match = cloneMatch(match)
	s.matches[match.ID] = memoryEntry{match: match, seq: s.nextSeq}
	s.nextSeq++
	return cloneMatch(match), nil
}

func (s *MemoryStore) DeleteMatch(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.matches[id]; !ok {
		return ErrMatchNotFound
	}
	delete(s.matches, id)
	return nil
}

func (s *MemoryStore) DeleteAllMatches() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.matches = make(map[string]memoryEntry)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func cloneMatch(m model.Match) model.Match {
	m.Sets = append([]model.SetScore(nil), m.Sets...)
	return m
}
