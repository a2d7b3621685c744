package store

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/dshills/confstore/internal/format"
)

// Bytes returns exactly what Save would write: the user layer encoded with
// the store's codec, prefixed with a BOM if the store is configured for one.
func (s *Store) Bytes() ([]byte, error) {
	data, err := s.codec.Encode(s.user)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if !s.bom {
		return data, nil
	}
	out := make([]byte, 0, len(format.BOM)+len(data))
	out = append(out, format.BOM...)
	return append(out, data...), nil
}

// FileBytes returns the current content of the store's file as read through
// its FS, BOM included.
func (s *Store) FileBytes() ([]byte, error) {
	if s.path == "" {
		return nil, ErrNoPath
	}
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, s.path, err)
	}
	return data, nil
}

// Save writes the user layer to the store's path, replacing the file in
// place. Use SaveSafe to protect against interrupted writes.
func (s *Store) Save() error {
	if s.path == "" {
		return ErrNoPath
	}
	return s.writeTo(s.path)
}

// SaveSafe writes the user layer to "<path>.<tempExt>" first. Only once that
// write has succeeded is the current file renamed to "<path>.<backupExt>"
// (replacing any older backup) or, with an empty backupExt, deleted. The
// temporary file is then renamed to path. A '.' is added in front of either
// extension if it does not already start with one.
//
// If the temporary write fails, path is left untouched. A failure in a later
// step leaves the original (or its backup) and the temporary file on disk.
func (s *Store) SaveSafe(tempExt, backupExt string) error {
	if tempExt == "" {
		s.logger.Error("SaveSafe: invalid temporary extension specified", "path", s.path)
		return ErrInvalidTempExt
	}
	if s.path == "" {
		return ErrNoPath
	}

	tempPath := withExt(s.path, tempExt)
	if err := s.writeTo(tempPath); err != nil {
		return err
	}

	if backupExt != "" {
		backupPath := withExt(s.path, backupExt)
		if err := s.fs.Remove(backupPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: removing old backup %s: %w", ErrWriteFailed, backupPath, err)
		}
		if err := s.fs.Rename(s.path, backupPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: backing up %s: %w", ErrWriteFailed, s.path, err)
		}
	} else if err := s.fs.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: removing %s: %w", ErrWriteFailed, s.path, err)
	}

	if err := s.fs.Rename(tempPath, s.path); err != nil {
		return fmt.Errorf("%w: replacing %s: %w", ErrWriteFailed, s.path, err)
	}
	s.logger.Debug("saved config", "path", s.path, "temp", tempPath, "backup", backupExt != "")
	return nil
}

func (s *Store) writeTo(path string) error {
	data, err := s.Bytes()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if err := s.fs.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err)
	}
	return nil
}

func withExt(path, ext string) string {
	if strings.HasPrefix(ext, ".") {
		return path + ext
	}
	return path + "." + ext
}
