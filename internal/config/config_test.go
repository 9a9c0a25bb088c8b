package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		c := Config{Log: LogConfig{Level: tt.level}}
		got, err := c.SlogLevel()
		if tt.wantErr {
			if err == nil {
				t.Errorf("level %q: expected error", tt.level)
			}
			continue
		}
		if err != nil {
			t.Errorf("level %q: %v", tt.level, err)
			continue
		}
		if got != tt.want {
			t.Errorf("level %q = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestMergeOverlaysNonZeroFields(t *testing.T) {
	base := DefaultConfig()
	base.Database.Path = "/base.db"

	base.Merge(&Config{
		Catalog: CatalogConfig{Path: "/custom.json"},
		Log:     LogConfig{Level: "debug"},
	})

	if base.Database.Path != "/base.db" {
		t.Errorf("database.path = %q, empty field must not clobber", base.Database.Path)
	}
	if base.Catalog.Path != "/custom.json" {
		t.Errorf("catalog.path = %q, want /custom.json", base.Catalog.Path)
	}
	if base.Log.Level != "debug" {
		t.Errorf("log.level = %q, want debug", base.Log.Level)
	}
}

func TestMergeNilIsNoOp(t *testing.T) {
	base := DefaultConfig()
	base.Merge(nil)
	if err := base.Validate(); err != nil {
		t.Fatalf("config invalid after nil merge: %v", err)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	c := DefaultConfig()
	c.Database.Path = "/tmp/worklens-test.db"
	c.Log.Level = "warn"
	if err := c.SaveToFile(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Database.Path != c.Database.Path {
		t.Errorf("database.path = %q, want %q", loaded.Database.Path, c.Database.Path)
	}
	if loaded.Log.Level != "warn" {
		t.Errorf("log.level = %q, want warn", loaded.Log.Level)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if !os.IsNotExist(err) {
		t.Fatalf("err = %v, want not-exist", err)
	}
}

func TestLoadFromFileBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("database: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEnsureUserConfigCreatesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	l := NewLoader(nil)
	if err := l.EnsureUserConfig(); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	path := filepath.Join(home, UserConfigDir, UserConfigFile)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("user config not created: %v", err)
	}

	// An existing file is left untouched.
	if err := os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := l.EnsureUserConfig(); err != nil {
		t.Fatalf("ensure again: %v", err)
	}
	c, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Log.Level != "warn" {
		t.Errorf("log.level = %q, existing config must not be overwritten", c.Log.Level)
	}
}

func TestLoaderEnvOverridesDatabasePath(t *testing.T) {
	t.Setenv("WORKLENS_DB", "/env/worklens.db")
	t.Setenv("HOME", t.TempDir()) // no user config

	c, err := NewLoader(nil).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Database.Path != "/env/worklens.db" {
		t.Errorf("database.path = %q, want env override", c.Database.Path)
	}
}
