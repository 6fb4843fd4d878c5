package file

import (
	"fmt"
	"path"
	"sort"
)

// ScanWorkingTree returns every file of the working tree that is not
// ignored, as sorted repository-relative paths. .gitlet is always skipped.
func (fc *FileContext) ScanWorkingTree() ([]string, error) {
	matcher := NewIgnore(fc.FS, fc.Config.IgnoreFile())

	var paths []string
	var walk func(rel string) error
	walk = func(rel string) error {
		dir := fc.Config.WorkingTreeDir
		if rel != "" {
			dir = fc.Config.WorkPath(rel)
		}
		entries, err := fc.FS.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("read dir %q: %w", dir, err)
		}
		for _, e := range entries {
			child := path.Join(rel, e.Name())
			if matcher.Match(child) {
				continue
			}
			if e.IsDir() {
				if err := walk(child); err != nil {
					return err
				}
				continue
			}
			if !e.Type().IsRegular() {
				continue // symlinks, devices
			}
			paths = append(paths, child)
		}
		return nil
	}

	if err := walk(""); err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
