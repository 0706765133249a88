package cliparse

import (
	"testing"
	"time"
)

func TestParseFlags(t *testing.T) {
	// Clear env so flags are the only input
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_TYPE", "")
	t.Setenv("SESSION_TTL", "")

	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(t *testing.T, cfg Config)
	}{
		{
			name: "full flags",
			args: []string{"-p", "9000", "-d", "postgres://localhost/pollbase", "-t", "postgres", "-session-ttl", "24h"},
			check: func(t *testing.T, cfg Config) {
				if cfg.Port != 9000 {
					t.Errorf("Expected port 9000, got %d", cfg.Port)
				}
				if cfg.DatabaseType != "postgres" {
					t.Errorf("Expected postgres, got %s", cfg.DatabaseType)
				}
				if cfg.SessionTTL != 24*time.Hour {
					t.Errorf("Expected 24h TTL, got %v", cfg.SessionTTL)
				}
			},
		},
		{
			name: "defaults",
			args: []string{"-d", "pollbase.db"},
			check: func(t *testing.T, cfg Config) {
				if cfg.Port != 8080 {
					t.Errorf("Expected default port 8080, got %d", cfg.Port)
				}
				if cfg.DatabaseType != "sqlite" {
					t.Errorf("Expected default sqlite, got %s", cfg.DatabaseType)
				}
				if cfg.SessionTTL != 168*time.Hour {
					t.Errorf("Expected default 168h TTL, got %v", cfg.SessionTTL)
				}
			},
		},
		{
			name:    "missing database URL",
			args:    []string{"-p", "9000"},
			wantErr: true,
		},
		{
			name:    "unknown database type",
			args:    []string{"-d", "x", "-t", "mongodb"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("DATABASE_URL", "postgres://env/pollbase")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("SESSION_TTL", "48h")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Port != 7070 {
		t.Errorf("Expected port 7070 from env, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://env/pollbase" {
		t.Errorf("Expected DATABASE_URL from env, got %s", cfg.DatabaseURL)
	}
	if cfg.SessionTTL != 48*time.Hour {
		t.Errorf("Expected 48h from env, got %v", cfg.SessionTTL)
	}
}
