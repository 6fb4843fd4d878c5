package fs

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/mmap"
)

// Files at or above this size are read through mmap.
const mmapThreshold = 1 << 20

// Hooks used for testing (overridable)
var (
	open       = func(path string) (io.ReadSeekCloser, error) { return os.Open(path) }
	readFile   = readFileMapped
	writeFile  = os.WriteFile
	stat       = os.Stat
	readDir    = os.ReadDir
	remove     = os.Remove
	rename     = os.Rename
	createTemp = os.CreateTemp
	mkdirAll   = os.MkdirAll
	isNotExist = func(err error) bool { return errors.Is(err, os.ErrNotExist) }
)

var exists = func(path string) bool {
	_, err := stat(path)
	return err == nil
}

var IsDir = func(path string) bool {
	fi, err := stat(path)
	return err == nil && fi.IsDir()
}

func readFileMapped(path string) ([]byte, error) {
	fi, err := stat(path)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() || fi.Size() < mmapThreshold {
		return os.ReadFile(path)
	}

	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mmap %q: %w", path, err)
	}
	defer r.Close()

	data := make([]byte, r.Len())
	if _, err := r.ReadAt(data, 0); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read mmap %q: %w", path, err)
	}
	return data, nil
}

// getters and setters for test override
func GetOpen() func(string) (io.ReadSeekCloser, error)  { return open }
func SetOpen(f func(string) (io.ReadSeekCloser, error)) { open = f }
func GetReadFile() func(string) ([]byte, error)         { return readFile }
func SetReadFile(f func(string) ([]byte, error))        { readFile = f }
func GetWriteFile() func(string, []byte, os.FileMode) error {
	return writeFile
}
func SetWriteFile(f func(string, []byte, os.FileMode) error) {
	writeFile = f
}
func GetStat() func(string) (os.FileInfo, error)       { return stat }
func SetStat(f func(string) (os.FileInfo, error))      { stat = f }
func GetReadDir() func(string) ([]os.DirEntry, error)  { return readDir }
func SetReadDir(f func(string) ([]os.DirEntry, error)) { readDir = f }
func GetRemove() func(string) error                    { return remove }
func SetRemove(f func(string) error)                   { remove = f }
func GetRename() func(string, string) error            { return rename }
func SetRename(f func(string, string) error)           { rename = f }
