package config

import (
	"reflect"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DSN", "host=localhost user=test dbname=test")
	t.Setenv("JWT_ACCESS_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Environment != "development" {
		t.Errorf("expected development default, got %q", cfg.Environment)
	}
	if cfg.HTTP.Port != 7090 {
		t.Errorf("expected default port 7090, got %d", cfg.HTTP.Port)
	}
	if cfg.Auth.TokenTTL != "24h" {
		t.Errorf("expected default TTL 24h, got %q", cfg.Auth.TokenTTL)
	}
	if cfg.Reports.DefaultPageSize != 10 || cfg.Reports.MaxPageSize != 100 {
		t.Errorf("unexpected page size defaults: %d/%d", cfg.Reports.DefaultPageSize, cfg.Reports.MaxPageSize)
	}
	wantStatuses := []string{"pending", "completed", "cancelled", "issue", "waste"}
	if !reflect.DeepEqual(cfg.Reports.ValidStatuses, wantStatuses) {
		t.Errorf("unexpected default statuses %v", cfg.Reports.ValidStatuses)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DSN", "host=localhost user=test dbname=test")
	t.Setenv("JWT_ACCESS_SECRET", "test-secret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("REPORTS_VALID_STATUSES", "pending, completed")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Environment != "production" {
		t.Errorf("expected production, got %q", cfg.Environment)
	}
	if cfg.HTTP.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.HTTP.Port)
	}
	if !reflect.DeepEqual(cfg.Reports.ValidStatuses, []string{"pending", "completed"}) {
		t.Errorf("list override not applied: %v", cfg.Reports.ValidStatuses)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("JWT_ACCESS_SECRET", "test-secret")
	if _, err := Load(); err == nil {
		t.Error("missing DB_DSN must fail")
	}

	t.Setenv("DB_DSN", "host=localhost")
	t.Setenv("JWT_ACCESS_SECRET", "")
	if _, err := Load(); err == nil {
		t.Error("missing JWT_ACCESS_SECRET must fail")
	}
}

func TestParseList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , ,b ", []string{"a", "b"}},
	}
	for _, tt := range tests {
		if got := parseList(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseList(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
