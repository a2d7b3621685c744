package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"runtime"

	"github.com/dshills/confstore/internal/format"
	"github.com/dshills/confstore/internal/section"
)

// OpenMode controls what Open does when the file does not exist.
type OpenMode int

const (
	// MustExist fails with ErrFileNotFound if the file is missing.
	MustExist OpenMode = iota
	// CreateIfMissing creates an empty file if it is missing.
	CreateIfMissing
)

// Store holds a user layer and a defaults layer of sections, plus the path
// the user layer is saved to.
type Store struct {
	path     string
	user     section.Layer
	defaults section.Layer

	fs     FS
	codec  format.Codec
	bom    bool
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithFS replaces the file system used for reads and saves.
func WithFS(fsys FS) Option {
	return func(s *Store) {
		if fsys != nil {
			s.fs = fsys
		}
	}
}

// WithCodec sets the format used when saving. The default is JSON; files are
// always read in whichever native format they are in.
func WithCodec(codec format.Codec) Option {
	return func(s *Store) {
		if codec != nil {
			s.codec = codec
		}
	}
}

// WithBOM controls whether saved files start with a UTF-8 byte order mark.
// The default follows the platform convention: on for Windows only.
func WithBOM(on bool) Option {
	return func(s *Store) {
		s.bom = on
	}
}

func newStore(path string, opts []Option) *Store {
	s := &Store{
		path:   path,
		fs:     OSFS{},
		codec:  format.JSON{},
		bom:    runtime.GOOS == "windows",
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create returns an empty store for path, creating the file or truncating
// it if it already exists.
func Create(path string, opts ...Option) (*Store, error) {
	s := newStore(path, opts)
	if err := s.fs.WriteFile(path, nil, 0o644); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCannotCreate, path, err)
	}
	return s, nil
}

// Open reads path into the user layer of a new store. Parsing is lenient:
// malformed content ends parsing early without an error.
func Open(path string, mode OpenMode, opts ...Option) (*Store, error) {
	s := newStore(path, opts)
	layer, err := s.parseFile(path, mode == CreateIfMissing)
	if err != nil {
		return nil, err
	}
	s.user = layer
	return s, nil
}

// OpenString parses text into the user layer of a store that has no path.
// Such a store cannot be saved.
func OpenString(text string, opts ...Option) *Store {
	s := newStore("", opts)
	s.user = s.parse("<string>", []byte(text))
	return s
}

// OpenDefaults parses path and appends its sections to the defaults layer.
func (s *Store) OpenDefaults(path string) error {
	layer, err := s.parseFile(path, false)
	if err != nil {
		return err
	}
	s.defaults = append(s.defaults, layer...)
	return nil
}

// Path returns the file the store saves to, or "" for a store opened from a
// string.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) parseFile(path string, create bool) (section.Layer, error) {
	data, err := s.fs.ReadFile(path)
	if err == nil {
		return s.parse(path, data), nil
	}
	if !create || !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	}
	if err := s.fs.WriteFile(path, nil, 0o644); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	}
	s.logger.Debug("created empty config file", "path", path)
	return nil, nil
}

func (s *Store) parse(source string, data []byte) section.Layer {
	data = format.StripBOM(data)
	codec := format.Detect(data)
	layer, err := codec.Decode(data)
	if err != nil {
		s.logger.Warn("ignoring malformed config data", "source", source, "format", codec.Name(), "error", err)
	}
	s.logger.Debug("parsed config", "source", source, "format", codec.Name(), "sections", len(layer))
	return layer
}
