package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.TempExt != "tmp" {
		t.Errorf("Default tempExt = %q, want %q", cfg.TempExt, "tmp")
	}
	if cfg.BackupExt != "bak" {
		t.Errorf("Default backupExt = %q, want %q", cfg.BackupExt, "bak")
	}
	if cfg.Writer != "json" {
		t.Errorf("Default writer = %q, want %q", cfg.Writer, "json")
	}
	if cfg.Format != "text" {
		t.Errorf("Default format = %q, want %q", cfg.Format, "text")
	}
	if !cfg.Redact {
		t.Error("Default redact should be true")
	}
}

func TestConfigDir_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if want := filepath.Join(dir, "confstore"); got != want {
		t.Errorf("ConfigDir = %q, want %q", got, want)
	}

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath error: %v", err)
	}
	if filepath.Base(path) != "config.json" {
		t.Errorf("ConfigPath = %q, want config.json file", path)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("LoadFile without a file = %+v, want defaults", cfg)
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.Writer = "ini"
	cfg.Redact = false
	cfg.BackupExt = "old"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if got != cfg {
		t.Errorf("LoadFile = %+v, want %+v", got, cfg)
	}

	// A second save keeps the first file as a backup.
	cfg.Format = "json"
	if err := Save(cfg); err != nil {
		t.Fatalf("second Save error: %v", err)
	}
	path, _ := ConfigPath()
	backup, err := os.ReadFile(path + ".old")
	if err != nil {
		t.Fatalf("reading backup: %v", err)
	}
	if !strings.Contains(string(backup), `"format": "text"`) {
		t.Errorf("backup does not hold the previous settings:\n%s", backup)
	}
}

func TestLoadFile_PartialFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "confstore", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	// An INI settings file is read as well; only writer is set.
	if err := os.WriteFile(path, []byte("[ConfStore]\nWriter=ini\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	want := Default()
	want.Writer = "ini"
	if cfg != want {
		t.Errorf("LoadFile = %+v, want %+v", cfg, want)
	}
}

func TestMergeEnv(t *testing.T) {
	t.Setenv("CONFSTORE_TEMP_EXT", "new")
	t.Setenv("CONFSTORE_BACKUP_EXT", "prev")
	t.Setenv("CONFSTORE_WRITER", "ini")
	t.Setenv("CONFSTORE_FORMAT", "json")
	t.Setenv("CONFSTORE_REDACT", "false")

	cfg := Default()
	if err := mergeEnv(&cfg); err != nil {
		t.Fatalf("mergeEnv error: %v", err)
	}

	want := Config{TempExt: "new", BackupExt: "prev", Writer: "ini", Format: "json", Redact: false}
	if cfg != want {
		t.Errorf("mergeEnv = %+v, want %+v", cfg, want)
	}
}

func TestMergeEnv_Invalid(t *testing.T) {
	t.Setenv("CONFSTORE_WRITER", "xml")
	cfg := Default()
	if err := mergeEnv(&cfg); err == nil {
		t.Error("mergeEnv should reject an unknown writer")
	}
}

func TestMergeOverrides(t *testing.T) {
	cfg := Default()
	overrides := map[string]string{
		KeyTempExt: "partial",
		KeyFormat:  "ini",
		KeyRedact:  "false",
		KeyWriter:  "",
	}
	if err := mergeOverrides(&cfg, overrides); err != nil {
		t.Fatalf("mergeOverrides error: %v", err)
	}

	if cfg.TempExt != "partial" {
		t.Errorf("TempExt = %q, want %q", cfg.TempExt, "partial")
	}
	if cfg.Format != "ini" {
		t.Errorf("Format = %q, want %q", cfg.Format, "ini")
	}
	if cfg.Redact {
		t.Error("Redact should be false")
	}
	if cfg.Writer != "json" {
		t.Errorf("Writer = %q, empty override must not apply", cfg.Writer)
	}
}

func TestMergeOverrides_Nil(t *testing.T) {
	cfg := Default()
	if err := mergeOverrides(&cfg, nil); err != nil {
		t.Fatalf("mergeOverrides error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Config changed with nil overrides")
	}
}

func TestLoad_Precedence(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	file := Default()
	file.Format = "json"
	file.Writer = "ini"
	if err := Save(file); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	t.Setenv("CONFSTORE_FORMAT", "ini")

	cfg, err := Load(map[string]string{KeyTempExt: "flag"})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Writer != "ini" {
		t.Errorf("Writer = %q, want file value %q", cfg.Writer, "ini")
	}
	if cfg.Format != "ini" {
		t.Errorf("Format = %q, want env value %q", cfg.Format, "ini")
	}
	if cfg.TempExt != "flag" {
		t.Errorf("TempExt = %q, want flag value %q", cfg.TempExt, "flag")
	}
}

func TestSetField(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr bool
	}{
		{KeyTempExt, "swp", false},
		{KeyTempExt, "", true},
		{KeyBackupExt, "", false},
		{KeyWriter, "ini", false},
		{KeyWriter, "yaml", true},
		{KeyFormat, "text", false},
		{KeyFormat, "sarif", true},
		{KeyRedact, "true", false},
		{KeyRedact, "maybe", true},
		{"unknown", "x", true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := Default()
			err := SetField(&cfg, tt.key, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("SetField(%q, %q) error = %v, wantErr %v", tt.key, tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestCodec(t *testing.T) {
	cfg := Default()
	c, err := cfg.Codec()
	if err != nil {
		t.Fatalf("Codec error: %v", err)
	}
	if c.Name() != "json" {
		t.Errorf("Codec = %q, want json", c.Name())
	}
}
