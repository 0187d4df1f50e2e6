package cmd

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hanjaplatform/hanja-api/pkg/config"
)

func TestServeCommand(t *testing.T) {
	t.Run("help", func(t *testing.T) {
		out, err := execute(t, "serve", "--help")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !strings.Contains(out, "Start the Hanja Platform API server") {
			t.Errorf("Expected help text, got %q", out)
		}
	})

	t.Run("invalid port", func(t *testing.T) {
		if _, err := execute(t, "serve", "--port", "invalid"); err == nil {
			t.Error("Expected an error for a non numeric port")
		}
	})

	t.Run("starts and stops with its context", func(t *testing.T) {
		config.Set("database.path", filepath.Join(t.TempDir(), "hanja.db"))

		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()

		cmd := NewRootCmd()
		cmd.SetContext(ctx)
		if _, err := execute(t, "serve", "--host", "127.0.0.1", "--port", "18089"); err != nil {
			t.Errorf("Execute() error = %v", err)
		}
	})
}

func TestServeCommandFlags(t *testing.T) {
	cmd := NewRootCmd()
	serveCmd, _, err := cmd.Find([]string{"serve"})
	if err != nil {
		t.Fatalf("Failed to find serve command: %v", err)
	}

	for _, name := range []string{"port", "host"} {
		if serveCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected %s flag to be registered", name)
		}
	}
}

func TestBuildDependencies(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "hanja.db")},
		Auth:     config.AuthConfig{JWTSecret: "test-secret", AdminRole: "admin"},
		Cache:    config.CacheConfig{MaxSizeMB: 1, TokenizeTTL: time.Minute, HanziTTL: time.Minute},
		History:  config.HistoryConfig{InputRetention: time.Hour, CleanupInterval: time.Minute},
	}

	deps, cleanup, err := buildDependencies(cfg)
	if err != nil {
		t.Fatalf("buildDependencies() error = %v", err)
	}
	defer cleanup()

	if deps.DB == nil || deps.History == nil || deps.Workspace == nil || deps.Hanzi == nil {
		t.Fatal("Expected store and services to be wired")
	}
	if deps.Sessions == nil {
		t.Error("Expected a session service when a secret is configured")
	}
	if deps.Retention == nil || !deps.Retention.Enabled() {
		t.Error("Expected history retention to be enabled")
	}
	if err := deps.DB.HealthCheck(); err != nil {
		t.Errorf("database unhealthy: %v", err)
	}
}

func TestNewSessions_NoSecret(t *testing.T) {
	sessions, err := newSessions(config.AuthConfig{})
	if err != nil {
		t.Fatalf("newSessions() error = %v", err)
	}
	if sessions != nil {
		t.Error("Expected no session service without a secret")
	}
}
