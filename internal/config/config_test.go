package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 8080\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Host != defaultHost {
		t.Errorf("host = %q, want default %q", cfg.Server.Host, defaultHost)
	}
	if cfg.Limits.MaxContentChars != defaultMaxContentChars {
		t.Errorf("max_content_chars = %d, want %d", cfg.Limits.MaxContentChars, defaultMaxContentChars)
	}
	if cfg.Limits.MaxBatchItems != defaultMaxBatchItems {
		t.Errorf("max_batch_items = %d, want %d", cfg.Limits.MaxBatchItems, defaultMaxBatchItems)
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		t.Error("expected default CORS origins")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}

	cfg.Server.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for port 0")
	}
}

func TestValidateSMTP(t *testing.T) {
	cfg := Default()
	if err := cfg.ValidateSMTP(); err == nil {
		t.Error("expected error for empty SMTP config")
	}

	cfg.SMTP = SMTPConfig{Host: "smtp.example.com", Port: 587, From: "triage@example.com"}
	if err := cfg.ValidateSMTP(); err != nil {
		t.Errorf("expected valid SMTP config, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := Default()
	cfg.Server.Port = 9000
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Server.Port != 9000 {
		t.Errorf("port = %d, want 9000", loaded.Server.Port)
	}
}
