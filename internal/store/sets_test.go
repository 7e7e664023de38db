package store

import (
	"fmt"
	"testing"

	"badminton-app/internal/model"
)

func TestDecodeSets(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []model.SetScore
		wantErr bool
	}{
		{
			name: "json strings",
			raw:  `["21-15","21-18"]`,
			want: []model.SetScore{{A: 21, B: 15}, {A: 21, B: 18}},
		},
		{
			name: "json objects",
			raw:  `[{"a":19,"b":21},{"a":21,"b":12}]`,
			want: []model.SetScore{{A: 19, B: 21}, {A: 21, B: 12}},
		},
		{
			name: "json text wrapping a list",
			raw:  `"[\"21-10\",\"8-21\"]"`,
			want: []model.SetScore{{A: 21, B: 10}, {A: 8, B: 21}},
		},
		{
			name: "comma delimited",
			raw:  "21-15, 21-18",
			want: []model.SetScore{{A: 21, B: 15}, {A: 21, B: 18}},
		},
		{
			name: "semicolon delimited with a bad token",
			raw:  "21-15;abc;15-21",
			want: []model.SetScore{{A: 21, B: 15}, {A: 15, B: 21}},
		},
		{
			name: "space delimited",
			raw:  "21-15 21-18 30-29",
			want: []model.SetScore{{A: 21, B: 15}, {A: 21, B: 18}, {A: 30, B: 29}},
		},
		{
			name: "single set with inner spaces",
			raw:  "21 - 15",
			want: []model.SetScore{{A: 21, B: 15}},
		},
		{
			name: "single quoted list literal",
			raw:  "['21-15', '19-21']",
			want: []model.SetScore{{A: 21, B: 15}, {A: 19, B: 21}},
		},
		{
			name: "unquoted list literal with a bad token",
			raw:  "[21-15, oops, 19-21]",
			want: []model.SetScore{{A: 21, B: 15}, {A: 19, B: 21}},
		},
		{name: "list literal of garbage", raw: "['x', 'y']", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "empty list", raw: "[]", wantErr: true},
		{name: "only garbage", raw: `["x-y","21"]`, wantErr: true},
		{name: "broken json", raw: `["21-15"`, wantErr: true},
		{name: "negative object", raw: `[{"a":-1,"b":21}]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeSets(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEncodeSetsRoundTrip(t *testing.T) {
	sets := []model.SetScore{{A: 21, B: 19}, {A: 30, B: 29}}
	encoded := encodeSets(sets)
	if encoded != `["21-19","30-29"]` {
		t.Fatalf("encodeSets = %s", encoded)
	}
	decoded, err := decodeSets(encoded)
	if err != nil {
		t.Fatalf("decodeSets: %v", err)
	}
	if fmt.Sprint(decoded) != fmt.Sprint(sets) {
		t.Errorf("round trip = %v, want %v", decoded, sets)
	}
}

func TestNormalizeMatch(t *testing.T) {
	sets := []model.SetScore{{A: 15, B: 21}, {A: 12, B: 21}}
	tests := []struct {
		name       string
		match      model.Match
		wantWinner string
		wantErr    bool
	}{
		{
			name:       "recorded winner kept",
			match:      model.Match{Player1: "Alice", Player2: "Bob", Sets: sets, Winner: "Bob"},
			wantWinner: "Bob",
		},
		{
			name:       "missing winner recomputed",
			match:      model.Match{Player1: " Alice ", Player2: "Bob", Sets: sets},
			wantWinner: "Bob",
		},
		{
			name:       "foreign winner recomputed",
			match:      model.Match{Player1: "Alice", Player2: "Bob", Sets: sets, Winner: "Carol"},
			wantWinner: "Bob",
		},
		{
			name:    "undecidable",
			match:   model.Match{Player1: "Alice", Player2: "Bob", Sets: []model.SetScore{{A: 21, B: 21}}},
			wantErr: true,
		},
		{
			name:    "same players",
			match:   model.Match{Player1: "Alice", Player2: "Alice", Sets: sets, Winner: "Alice"},
			wantErr: true,
		},
		{
			name:    "no sets",
			match:   model.Match{Player1: "Alice", Player2: "Bob", Winner: "Bob"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeMatch(tt.match)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Winner != tt.wantWinner {
				t.Errorf("winner = %q, want %q", got.Winner, tt.wantWinner)
			}
			if got.Player1 != "Alice" {
				t.Errorf("player1 = %q, want trimmed Alice", got.Player1)
			}
		})
	}
}
