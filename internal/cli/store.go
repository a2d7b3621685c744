package cli

import (
	"github.com/dshills/confstore/internal/config"
	"github.com/dshills/confstore/internal/store"
)

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagTempExt != "" {
		m[config.KeyTempExt] = flagTempExt
	}
	if flagBackupExt != "" {
		m[config.KeyBackupExt] = flagBackupExt
	}
	if flagWriter != "" {
		m[config.KeyWriter] = flagWriter
	}
	if flagFormat != "" {
		m[config.KeyFormat] = flagFormat
	}
	if flagNoRedact {
		m[config.KeyRedact] = "false"
	}
	return m
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return config.Config{}, err
	}
	if flagNoBackup {
		cfg.BackupExt = ""
	}
	return cfg, nil
}

// openStore opens path with the logger and the configured write format.
func openStore(path string, mode store.OpenMode, cfg config.Config) (*store.Store, error) {
	codec, err := cfg.Codec()
	if err != nil {
		return nil, err
	}
	return store.Open(path, mode, store.WithLogger(logger), store.WithCodec(codec))
}

func saveStore(s *store.Store, cfg config.Config) error {
	logger.Debug("saving", "path", s.Path(), "tempExt", cfg.TempExt, "backupExt", cfg.BackupExt)
	return s.SaveSafe(cfg.TempExt, cfg.BackupExt)
}
