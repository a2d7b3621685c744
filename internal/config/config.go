package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/dshills/confstore/internal/format"
	"github.com/dshills/confstore/internal/store"
)

// Section is the settings file section that holds every key.
const Section = "confstore"

// Keys as they appear in the settings file and in `config set`.
const (
	KeyTempExt   = "tempExt"
	KeyBackupExt = "backupExt"
	KeyWriter    = "writer"
	KeyFormat    = "format"
	KeyRedact    = "redact"
)

// Config represents the confstore tool settings.
type Config struct {
	TempExt   string `json:"tempExt"`
	BackupExt string `json:"backupExt"`
	Writer    string `json:"writer"`
	Format    string `json:"format"`
	Redact    bool   `json:"redact"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		TempExt:   "tmp",
		BackupExt: "bak",
		Writer:    "json",
		Format:    "text",
		Redact:    true,
	}
}

// Codec returns the codec stores should save with.
func (c Config) Codec() (format.Codec, error) {
	return format.ByName(c.Writer)
}

// ConfigDir returns the platform-appropriate config directory for confstore.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "confstore"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "confstore"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "confstore"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "confstore"), nil
	default:
		return filepath.Join(home, ".config", "confstore"), nil
	}
}

// ConfigPath returns the full path to the settings file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads settings from the settings file. Returns Default() and nil
// error if the file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	s, err := store.Open(path, store.MustExist)
	if err != nil {
		if errors.Is(err, store.ErrFileNotFound) {
			if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
				return Default(), nil
			}
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	applyDefaults(s, Default())
	return fromStore(s), nil
}

// Save writes the settings file, keeping the previous one as a backup.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	s, err := store.Open(path, store.CreateIfMissing)
	if err != nil {
		return err
	}
	s.SetString(Section, KeyTempExt, cfg.TempExt)
	s.SetString(Section, KeyBackupExt, cfg.BackupExt)
	s.SetString(Section, KeyWriter, cfg.Writer)
	s.SetString(Section, KeyFormat, cfg.Format)
	s.SetBool(Section, KeyRedact, cfg.Redact)

	tempExt, backupExt := cfg.TempExt, cfg.BackupExt
	if tempExt == "" {
		tempExt = Default().TempExt
	}
	return s.SaveSafe(tempExt, backupExt)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	if err := mergeEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := mergeOverrides(&cfg, overrides); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyDefaults(s *store.Store, def Config) {
	s.SetDefaultString(Section, KeyTempExt, def.TempExt)
	s.SetDefaultString(Section, KeyBackupExt, def.BackupExt)
	s.SetDefaultString(Section, KeyWriter, def.Writer)
	s.SetDefaultString(Section, KeyFormat, def.Format)
	s.SetDefaultBool(Section, KeyRedact, def.Redact)
}

func fromStore(s *store.Store) Config {
	var cfg Config
	cfg.TempExt, _ = s.GetString(Section, KeyTempExt)
	cfg.BackupExt, _ = s.GetString(Section, KeyBackupExt)
	cfg.Writer, _ = s.GetString(Section, KeyWriter)
	cfg.Format, _ = s.GetString(Section, KeyFormat)
	cfg.Redact = s.GetBool(Section, KeyRedact)
	return cfg
}

var envKeys = map[string]string{
	"CONFSTORE_TEMP_EXT":   KeyTempExt,
	"CONFSTORE_BACKUP_EXT": KeyBackupExt,
	"CONFSTORE_WRITER":     KeyWriter,
	"CONFSTORE_FORMAT":     KeyFormat,
	"CONFSTORE_REDACT":     KeyRedact,
}

func mergeEnv(cfg *Config) error {
	for env, key := range envKeys {
		v := os.Getenv(env)
		if v == "" {
			continue
		}
		if err := SetField(cfg, key, v); err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
	}
	return nil
}

func mergeOverrides(cfg *Config, overrides map[string]string) error {
	for key, v := range overrides {
		if v == "" {
			continue
		}
		if err := SetField(cfg, key, v); err != nil {
			return err
		}
	}
	return nil
}

// SetField sets a single config field by key name. Returns error if key is
// unknown or the value is invalid for it.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case KeyTempExt:
		if value == "" {
			return fmt.Errorf("%s must not be empty", KeyTempExt)
		}
		cfg.TempExt = value
	case KeyBackupExt:
		cfg.BackupExt = value
	case KeyWriter:
		if value != "json" && value != "ini" {
			return fmt.Errorf("writer must be json or ini, got %q", value)
		}
		cfg.Writer = value
	case KeyFormat:
		switch value {
		case "text", "json", "ini", "report":
		default:
			return fmt.Errorf("format must be one of text, json, ini, report; got %q", value)
		}
		cfg.Format = value
	case KeyRedact:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("redact must be a boolean: %w", err)
		}
		cfg.Redact = b
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
