package postgres

import (
	"strings"
	"testing"
)

func TestEnsureSearchPath(t *testing.T) {
	tests := []struct {
		name    string
		connStr string
		want    string
	}{
		{
			name:    "url without search_path",
			connStr: "postgres://user@localhost:5432/habit",
			want:    "search_path=habit",
		},
		{
			name:    "url with existing search_path",
			connStr: "postgres://user@localhost:5432/habit?search_path=custom",
			want:    "search_path=custom",
		},
		{
			name:    "dsn without search_path",
			connStr: "host=localhost dbname=habit",
			want:    "search_path=habit",
		},
		{
			name:    "dsn with existing search_path",
			connStr: "host=localhost search_path=custom dbname=habit",
			want:    "search_path=custom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.connStr)
			if !strings.Contains(s.connStr, tt.want) {
				t.Errorf("connStr = %q, want it to contain %q", s.connStr, tt.want)
			}
			if strings.Count(s.connStr, "search_path") != 1 {
				t.Errorf("connStr = %q, want exactly one search_path", s.connStr)
			}
		})
	}
}

func TestHasSearchPathParam(t *testing.T) {
	tests := []struct {
		name    string
		connStr string
		want    bool
	}{
		{name: "no search_path", connStr: "host=localhost dbname=habit", want: false},
		{name: "lowercase", connStr: "host=localhost search_path=habit dbname=habit", want: true},
		{name: "uppercase", connStr: "host=localhost SEARCH_PATH=habit", want: true},
		{name: "in value should not match", connStr: "host=localhost password=search_path_123", want: false},
		{name: "at start", connStr: "search_path=public,habit host=localhost", want: true},
		{name: "at end", connStr: "host=localhost search_path=habit", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasSearchPathParam(tt.connStr); got != tt.want {
				t.Errorf("hasSearchPathParam(%q) = %v, want %v", tt.connStr, got, tt.want)
			}
		})
	}
}
