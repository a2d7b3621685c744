package store

import (
	"os"
)

// FS is the set of file operations a store needs. It allows tests to inject
// failures at any step of a save.
type FS interface {
	ReadFile(name string) ([]byte, error)
	// WriteFile creates or truncates name and writes data to it. It must not
	// return before the data has reached stable storage.
	WriteFile(name string, data []byte, perm os.FileMode) error
	Rename(oldpath, newpath string) error
	Remove(name string) error
}

// OSFS implements FS with the os package.
type OSFS struct{}

// ReadFile reads the entire file.
func (OSFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFile writes data and syncs it before closing the file.
func (OSFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Rename renames oldpath to newpath, replacing newpath if it exists.
func (OSFS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// Remove deletes the named file.
func (OSFS) Remove(name string) error {
	return os.Remove(name)
}
