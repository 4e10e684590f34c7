package http

import (
	"errors"
	"testing"
	"time"

	"github.com/emrebkr/vendcare/internal/listview"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
		ok   bool
	}{
		{"rfc3339", "2024-03-01T10:30:00Z", time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC), true},
		{"date only", "2024-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"no zone", "2024-03-01T10:30:00", time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC), true},
		{"padded", "  2024-03-01  ", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"empty", "", time.Time{}, false},
		{"garbage", "yesterday", time.Time{}, false},
		{"wrong order", "01-03-2024", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.raw)
			if tt.ok {
				if err != nil {
					t.Fatalf("parseDate(%q): %v", tt.raw, err)
				}
				if !got.Equal(tt.want) {
					t.Errorf("parseDate(%q) = %v, want %v", tt.raw, got, tt.want)
				}
				return
			}
			if !errors.Is(err, errInvalidDate) {
				t.Errorf("parseDate(%q): expected errInvalidDate, got %v", tt.raw, err)
			}
		})
	}
}

func TestParseIntDefault(t *testing.T) {
	tests := []struct {
		raw      string
		fallback int
		want     int
	}{
		{"", 10, 10},
		{"3", 10, 3},
		{"0", 10, 0},
		{"-1", 10, 10},
		{"abc", 10, 10},
	}
	for _, tt := range tests {
		if got := parseIntDefault(tt.raw, tt.fallback); got != tt.want {
			t.Errorf("parseIntDefault(%q, %d) = %d, want %d", tt.raw, tt.fallback, got, tt.want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		raw  string
		want listview.Direction
	}{
		{"asc", listview.Asc},
		{"ASC", listview.Asc},
		{"desc", listview.Desc},
		{"", listview.Desc},
		{"sideways", listview.Desc},
	}
	for _, tt := range tests {
		if got := parseDirection(tt.raw); got != tt.want {
			t.Errorf("parseDirection(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
