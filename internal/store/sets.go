package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"badminton-app/internal/model"
	"badminton-app/internal/scoring"
)

var errNoSets = errors.New("no readable set scores")

// encodeSets writes the canonical column value: a JSON array of "A-B" strings.
func encodeSets(sets []model.SetScore) string {
	texts := make([]string, 0, len(sets))
	for _, set := range sets {
		texts = append(texts, set.String())
	}
	return string(toJSON(texts))
}

// decodeSets reads every shape the sets column has held over time: a JSON
// array of strings or of {a,b} objects, a JSON string wrapping one of those,
// a bracketed list with single-quoted items, or a plain delimited list.
// Unreadable entries are dropped.
func decodeSets(raw string) ([]model.SetScore, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errNoSets
	}

	var texts []string
	if err := json.Unmarshal([]byte(raw), &texts); err == nil {
		return parseSetTexts(texts)
	}
	var objects []model.SetScore
	if err := json.Unmarshal([]byte(raw), &objects); err == nil {
		if len(objects) == 0 {
			return nil, errNoSets
		}
		for _, set := range objects {
			if set.A < 0 || set.B < 0 {
				return nil, fmt.Errorf("%w: %s", model.ErrInvalidSetScore, set)
			}
		}
		return objects, nil
	}
	var wrapped string
	if err := json.Unmarshal([]byte(raw), &wrapped); err == nil {
		return decodeSets(wrapped)
	}
	if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") {
		// list literal that is not JSON, e.g. ['21-15', '19-21']
		tokens := strings.Split(strings.TrimSuffix(strings.TrimPrefix(raw, "["), "]"), ",")
		for i, token := range tokens {
			tokens[i] = strings.Trim(strings.TrimSpace(token), `'"`)
		}
		return parseSetTexts(tokens)
	}
	if strings.HasPrefix(raw, "[") || strings.HasPrefix(raw, "{") {
		return nil, fmt.Errorf("malformed sets column %q", raw)
	}
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '|' || r == '\n'
	})
	sets, err := parseSetTexts(fields)
	if err != nil && len(fields) == 1 {
		return parseSetTexts(strings.Fields(raw))
	}
	return sets, err
}

func parseSetTexts(texts []string) ([]model.SetScore, error) {
	sets := make([]model.SetScore, 0, len(texts))
	for _, text := range texts {
		set, err := model.ParseLooseSetScore(text)
		if err != nil {
			continue
		}
		sets = append(sets, set)
	}
	if len(sets) == 0 {
		return nil, errNoSets
	}
	return sets, nil
}

// normalizeMatch checks a row read back from storage. A winner that is not
// one of the two players is recomputed from the sets.
func normalizeMatch(match model.Match) (model.Match, error) {
	match.Player1 = strings.TrimSpace(match.Player1)
	match.Player2 = strings.TrimSpace(match.Player2)
	match.Winner = strings.TrimSpace(match.Winner)
	if match.Player1 == "" || match.Player2 == "" {
		return model.Match{}, fmt.Errorf("match %s: missing player", match.ID)
	}
	if match.Player1 == match.Player2 {
		return model.Match{}, fmt.Errorf("match %s: identical players", match.ID)
	}
	if len(match.Sets) == 0 {
		return model.Match{}, fmt.Errorf("match %s: %w", match.ID, errNoSets)
	}
	if match.Winner != match.Player1 && match.Winner != match.Player2 {
		winner, ok := scoring.ResolveWinner(match.Sets, match.Player1, match.Player2)
		if !ok {
			return model.Match{}, fmt.Errorf("match %s: undecided result", match.ID)
		}
		match.Winner = winner
	}
	return match, nil
}

func toJSON(v any) []byte {
	if v == nil {
		return []byte("null")
	}
	data, err := json.Marshal(v)
	if err != nil {
		return []byte("null")
	}
	return data
}
