package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func useConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("RESTFORGE_CONFIG_DIR", dir)
	return dir
}

func TestLoadSettingsDefaultsWhenMissing(t *testing.T) {
	useConfigDir(t)

	settings, handle, err := LoadSettings()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if settings.RequestTimeout() != RequestTimeoutDefault {
		t.Fatalf("expected default timeout, got %s", settings.RequestTimeout())
	}
	if !settings.Follow() {
		t.Fatalf("redirects should follow by default")
	}
	if handle.Format != SettingsFormatTOML {
		t.Fatalf("expected toml handle, got %q", handle.Format)
	}
}

func TestLoadSettingsPrefersTOML(t *testing.T) {
	dir := useConfigDir(t)
	tomlData := "export_dir = \"/tmp/exports\"\n\n[request]\ntimeout = \"5s\"\ninsecure = true\n"
	if err := os.WriteFile(filepath.Join(dir, "settings.toml"), []byte(tomlData), 0o644); err != nil {
		t.Fatalf("write toml: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte(`{"export_dir":"/json"}`), 0o644); err != nil {
		t.Fatalf("write json: %v", err)
	}

	settings, handle, err := LoadSettings()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if handle.Format != SettingsFormatTOML {
		t.Fatalf("toml should win, got %q", handle.Format)
	}
	if settings.ExportDir != "/tmp/exports" {
		t.Fatalf("unexpected export dir %q", settings.ExportDir)
	}
	if settings.RequestTimeout() != 5*time.Second {
		t.Fatalf("unexpected timeout %s", settings.RequestTimeout())
	}
	if !settings.Request.Insecure {
		t.Fatalf("insecure flag lost")
	}
}

func TestNormaliseClampsTimeout(t *testing.T) {
	settings := NormaliseSettings(Settings{Request: RequestSettings{Timeout: "25h"}})
	if settings.RequestTimeout() != RequestTimeoutMax {
		t.Fatalf("expected clamp to max, got %s", settings.RequestTimeout())
	}

	settings = NormaliseSettings(Settings{Request: RequestSettings{Timeout: "1ms"}})
	if settings.RequestTimeout() != RequestTimeoutMin {
		t.Fatalf("expected clamp to min, got %s", settings.RequestTimeout())
	}

	settings = NormaliseSettings(Settings{Request: RequestSettings{Timeout: "junk"}})
	if settings.RequestTimeout() != RequestTimeoutDefault {
		t.Fatalf("unparsable timeout should fall back, got %s", settings.RequestTimeout())
	}
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	dir := useConfigDir(t)
	follow := false
	settings := Settings{
		ExportDir: "/somewhere",
		Request:   RequestSettings{Timeout: "12s", FollowRedirects: &follow},
	}

	handle := SettingsHandle{Path: filepath.Join(dir, "settings.toml"), Format: SettingsFormatTOML}
	if err := SaveSettings(settings, handle); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, _, err := LoadSettings()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.ExportDir != "/somewhere" || loaded.RequestTimeout() != 12*time.Second || loaded.Follow() {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
}
