package store

import "errors"

// Errors returned by store operations. Failures are wrapped, so compare with
// errors.Is.
var (
	// ErrFileNotFound indicates a file that must exist could not be opened.
	ErrFileNotFound = errors.New("config file not found")

	// ErrCannotCreate indicates a new config file could not be created.
	ErrCannotCreate = errors.New("cannot create config file")

	// ErrNoPath indicates a save on a store opened from a string.
	ErrNoPath = errors.New("config has no file path")

	// ErrInvalidTempExt indicates SaveSafe was called without a temp extension.
	ErrInvalidTempExt = errors.New("invalid temporary extension")

	// ErrWriteFailed indicates an I/O failure while saving.
	ErrWriteFailed = errors.New("config write failed")
)
