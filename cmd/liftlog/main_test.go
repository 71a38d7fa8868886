package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/terraincognita07/liftlog/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DB_PATH", "SECRET_KEY", "ACCESS_KEY", "ACCESS_KEY_HASH", "REQUIRE_ACCESS",
		"CORS_ORIGINS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "ROUTINES_FILE", "STATIC_DIR",
		"LOG_FORMAT", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"serve", "seed", "hash-key"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("expected subcommand %q, got %v (%v)", name, cmd, err)
		}
	}
}

func TestResolveAccessKeyHash(t *testing.T) {
	hash, err := resolveAccessKeyHash(config.Config{})
	if err != nil || hash != nil {
		t.Fatalf("expected no hash without key, got %q, %v", hash, err)
	}

	hash, err = resolveAccessKeyHash(config.Config{AccessKey: "deadlift"})
	if err != nil {
		t.Fatalf("hash plaintext key: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte("deadlift")); err != nil {
		t.Fatalf("expected hash of plaintext key, got mismatch: %v", err)
	}

	hash, err = resolveAccessKeyHash(config.Config{AccessKey: "ignored", AccessKeyHash: "$2a$10$stored"})
	if err != nil || string(hash) != "$2a$10$stored" {
		t.Fatalf("expected configured hash to win, got %q, %v", hash, err)
	}
}

func TestSeedCommandHonoursFlags(t *testing.T) {
	clearConfigEnv(t)
	dbPath := filepath.Join(t.TempDir(), "flag.db")

	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"seed", "--env-file", "", "--db", dbPath, "--log-level", "error"})
	if err := root.Execute(); err != nil {
		t.Fatalf("seed command failed: %v", err)
	}
	if !strings.Contains(out.String(), dbPath) || !strings.Contains(out.String(), "Seeded 3 exercises") {
		t.Fatalf("unexpected seed output %q", out.String())
	}
}

func TestServeRejectsInvalidPortFlag(t *testing.T) {
	clearConfigEnv(t)

	root := newRootCmd()
	root.SetArgs([]string{"serve", "--env-file", "", "--port", "70000"})
	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "invalid PORT") {
		t.Fatalf("expected invalid port error, got %v", err)
	}
}

func TestServeRequireAccessNeedsKey(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("SECRET_KEY", "0123456789abcdef0123456789abcdef")

	root := newRootCmd()
	root.SetArgs([]string{"serve", "--env-file", "", "--require-access"})
	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "REQUIRE_ACCESS") {
		t.Fatalf("expected missing access key error, got %v", err)
	}
}
