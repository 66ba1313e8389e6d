package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Database.Path == "" {
		t.Error("expected a default database path")
	}
	if config.Library.DefaultVolume != "external_primary" {
		t.Errorf("expected default volume 'external_primary', got %q", config.Library.DefaultVolume)
	}
	if config.Library.DefaultMimeType != "audio/x-mpegurl" {
		t.Errorf("expected default MIME type 'audio/x-mpegurl', got %q", config.Library.DefaultMimeType)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("parses a valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[database]
path = "test.db"
max_open_conns = 5
max_idle_conns = 2

[library]
default_volume = "internal"
default_mime_type = "audio/x-scpls"

[log]
level = "debug"
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "test.db" {
			t.Errorf("expected path 'test.db', got %q", config.Database.Path)
		}
		if config.Database.MaxOpenConns != 5 {
			t.Errorf("expected 5 max open conns, got %d", config.Database.MaxOpenConns)
		}
		if config.Library.DefaultVolume != "internal" {
			t.Errorf("expected volume 'internal', got %q", config.Library.DefaultVolume)
		}
		if config.Log.Level != "debug" {
			t.Errorf("expected log level 'debug', got %q", config.Log.Level)
		}
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("fails on malformed TOML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		if err := os.WriteFile(path, []byte("not [valid"), 0o644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if _, err := LoadConfig(path); err == nil {
			t.Error("expected error for malformed TOML")
		}
	})
}

func TestCreateConfigFile(t *testing.T) {
	t.Run("writes a loadable template", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		if err := CreateConfigFile(path); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}
		if config.Database.Path != DefaultConfig().Database.Path {
			t.Error("expected created config to match defaults")
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("existing"), 0o644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		if err := CreateConfigFile(path); err == nil {
			t.Error("expected error when file exists")
		}
	})
}
