package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// faultFS wraps OSFS and fails selected operations.
type faultFS struct {
	OSFS
	failWrite  func(name string) bool
	failRename func(oldpath, newpath string) bool
	failRemove func(name string) bool
	calls      []string
}

var errInjected = errors.New("injected failure")

func (f *faultFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	f.calls = append(f.calls, "write "+filepath.Base(name))
	if f.failWrite != nil && f.failWrite(name) {
		return errInjected
	}
	return f.OSFS.WriteFile(name, data, perm)
}

func (f *faultFS) Rename(oldpath, newpath string) error {
	f.calls = append(f.calls, "rename "+filepath.Base(oldpath)+" "+filepath.Base(newpath))
	if f.failRename != nil && f.failRename(oldpath, newpath) {
		return errInjected
	}
	return f.OSFS.Rename(oldpath, newpath)
}

func (f *faultFS) Remove(name string) error {
	f.calls = append(f.calls, "remove "+filepath.Base(name))
	if f.failRemove != nil && f.failRemove(name) {
		return errInjected
	}
	return f.OSFS.Remove(name)
}

const originalContent = "[General]\nName=original\n"

func openFixture(t *testing.T, fsys FS) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "basic.ini")
	writeFile(t, path, originalContent)
	s, err := Open(path, MustExist, WithLogger(quietLogger()), WithFS(fsys), WithBOM(false))
	require.NoError(t, err)
	s.SetString("General", "Name", "updated")
	return s, path
}

func readString(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestSave_NoPath(t *testing.T) {
	s := OpenString("[A]\nx=1\n", WithLogger(quietLogger()))
	assert.ErrorIs(t, s.Save(), ErrNoPath)
	assert.ErrorIs(t, s.SaveSafe("tmp", "bak"), ErrNoPath)
}

func TestSave_WriteFailed(t *testing.T) {
	fsys := &faultFS{failWrite: func(string) bool { return true }}
	s, path := openFixture(t, fsys)
	assert.ErrorIs(t, s.Save(), ErrWriteFailed)
	assert.Equal(t, originalContent, readString(t, path))
}

func TestSave_WritesJSON(t *testing.T) {
	s, path := openFixture(t, OSFS{})
	require.NoError(t, s.Save())
	assert.Equal(t, "{\n    \"General\": {\n        \"Name\": \"updated\"\n    }\n}\n", readString(t, path))
}

func TestFileBytes(t *testing.T) {
	s, path := openFixture(t, OSFS{})
	data, err := s.FileBytes()
	require.NoError(t, err)
	assert.Equal(t, originalContent, string(data), "FileBytes returns the disk content, not the edited layer")

	require.NoError(t, os.Remove(path))
	_, err = s.FileBytes()
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = OpenString("").FileBytes()
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestSave_BOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.json")
	s, err := Create(path, WithLogger(quietLogger()), WithBOM(true))
	require.NoError(t, err)
	s.SetString("A", "b", "c")
	require.NoError(t, s.Save())

	data := readString(t, path)
	assert.Equal(t, "\xEF\xBB\xBF{", data[:4])

	reopened, err := Open(path, MustExist, WithLogger(quietLogger()))
	require.NoError(t, err)
	v, ok := reopened.GetString("A", "b")
	require.True(t, ok)
	assert.Equal(t, "c", v)
}

func TestSaveSafe_InvalidTempExt(t *testing.T) {
	fsys := &faultFS{}
	s, path := openFixture(t, fsys)
	assert.ErrorIs(t, s.SaveSafe("", "bak"), ErrInvalidTempExt)
	assert.Empty(t, fsys.calls)
	assert.Equal(t, originalContent, readString(t, path))
}

func TestSaveSafe_WithBackup(t *testing.T) {
	fsys := &faultFS{}
	s, path := openFixture(t, fsys)
	writeFile(t, path+".bak", "stale backup")

	require.NoError(t, s.SaveSafe("tmp", ".bak"))

	assert.Equal(t, []string{
		"write basic.ini.tmp",
		"remove basic.ini.bak",
		"rename basic.ini basic.ini.bak",
		"rename basic.ini.tmp basic.ini",
	}, fsys.calls)
	assert.Equal(t, originalContent, readString(t, path+".bak"))
	assert.Contains(t, readString(t, path), `"updated"`)
	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestSaveSafe_WithoutBackup(t *testing.T) {
	fsys := &faultFS{}
	s, path := openFixture(t, fsys)

	require.NoError(t, s.SaveSafe(".tmp", ""))

	assert.Equal(t, []string{
		"write basic.ini.tmp",
		"remove basic.ini",
		"rename basic.ini.tmp basic.ini",
	}, fsys.calls)
	assert.Contains(t, readString(t, path), `"updated"`)
}

func TestSaveSafe_FirstSaveWithoutExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.json")
	s := OpenString("", WithLogger(quietLogger()))
	s.path = path
	s.SetString("A", "b", "c")

	require.NoError(t, s.SaveSafe("tmp", "bak"))
	assert.Contains(t, readString(t, path), `"b": "c"`)
	_, err := os.Stat(path + ".bak")
	assert.True(t, os.IsNotExist(err))
}

func TestSaveSafe_TempWriteFailureLeavesOriginal(t *testing.T) {
	fsys := &faultFS{failWrite: func(string) bool { return true }}
	s, path := openFixture(t, fsys)

	assert.ErrorIs(t, s.SaveSafe("tmp", "bak"), ErrWriteFailed)
	assert.Equal(t, []string{"write basic.ini.tmp"}, fsys.calls)
	assert.Equal(t, originalContent, readString(t, path))
}

func TestSaveSafe_CrashWindow(t *testing.T) {
	tests := []struct {
		name      string
		backupExt string
		fsys      *faultFS
	}{
		{
			name:      "backup rename fails",
			backupExt: "bak",
			fsys: &faultFS{failRename: func(oldpath, newpath string) bool {
				return filepath.Ext(newpath) == ".bak"
			}},
		},
		{
			name:      "old backup removal fails",
			backupExt: "bak",
			fsys: &faultFS{failRemove: func(name string) bool {
				return filepath.Ext(name) == ".bak"
			}},
		},
		{
			name:      "primary removal fails",
			backupExt: "",
			fsys:      &faultFS{failRemove: func(string) bool { return true }},
		},
		{
			name:      "final rename fails",
			backupExt: "bak",
			fsys: &faultFS{failRename: func(oldpath, newpath string) bool {
				return filepath.Ext(oldpath) == ".tmp"
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, path := openFixture(t, tt.fsys)

			err := s.SaveSafe("tmp", tt.backupExt)
			require.ErrorIs(t, err, ErrWriteFailed)
			assert.ErrorIs(t, err, errInjected)

			// The replacement content is complete in the temp file.
			assert.Contains(t, readString(t, path+".tmp"), `"updated"`)

			// The original bytes survive, either in place or as the backup.
			if data, err := os.ReadFile(path); err == nil {
				assert.Equal(t, originalContent, string(data))
			} else {
				assert.Equal(t, originalContent, readString(t, path+".bak"))
			}
		})
	}
}
