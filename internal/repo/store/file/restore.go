package file

import (
	"fmt"
	"log/slog"
	"path"

	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/util"
)

// ApplySnapshot makes the working tree match target, assuming it currently
// reflects current. Both are commit file tables (path to blob key).
//
// A target path whose working file is untracked by current, or differs
// from current's version, is an obstruction unless it already holds the
// target content. So is a working file in place of one of its parent
// directories, or a directory in its place, unless the switch deletes
// it. With preflight every target path is checked before the first
// change; otherwise paths are checked and written one by one and a
// failure leaves the earlier changes in place.
//
// Files tracked by current and absent from target are deleted before
// anything is written, so a path may turn from file to directory.
func (fc *FileContext) ApplySnapshot(current, target map[string]string, preflight bool) error {
	paths := util.SortedKeys(target)

	if preflight {
		for _, p := range paths {
			if err := fc.checkObstruction(p, current, target); err != nil {
				return err
			}
		}
	}

	for _, p := range util.SortedKeys(current) {
		if _, keep := target[p]; keep {
			continue
		}
		if err := fc.RemoveWorking(p); err != nil {
			return err
		}
	}

	for _, p := range paths {
		if !preflight {
			if err := fc.checkObstruction(p, current, target); err != nil {
				return err
			}
		}
		if err := fc.writeTarget(p, target[p]); err != nil {
			return err
		}
	}

	slog.Debug("snapshot applied", "files", len(target), "preflight", preflight)
	return nil
}

// Obstructed reports whether writing key to rel would destroy working
// content that current cannot reproduce.
func (fc *FileContext) Obstructed(rel string, current map[string]string, key string) (bool, error) {
	workKey, present, err := fc.WorkingKey(rel)
	if err != nil || !present {
		return false, err
	}
	if workKey == key {
		return false, nil
	}
	if curKey, tracked := current[rel]; tracked && curKey == workKey {
		return false, nil
	}
	return true, nil
}

func (fc *FileContext) checkObstruction(rel string, current, target map[string]string) error {
	blocked, err := fc.Obstructed(rel, current, target[rel])
	if err == nil && !blocked {
		blocked, err = fc.layoutBlocked(rel, current, target)
	}
	if err != nil {
		return err
	}
	if blocked {
		return fmt.Errorf("%s: %w", rel, errs.ErrUntrackedObstruction)
	}
	return nil
}

// layoutBlocked reports whether the working tree's shape keeps rel from
// being written: a file sits where one of rel's parent directories goes,
// or rel is a directory holding files. Files the switch deletes do not count.
func (fc *FileContext) layoutBlocked(rel string, current, target map[string]string) (bool, error) {
	deleted := func(p string) bool {
		_, tracked := current[p]
		_, kept := target[p]
		return tracked && !kept
	}

	for dir := path.Dir(rel); dir != "."; dir = path.Dir(dir) {
		p := fc.Config.WorkPath(dir)
		if fc.FS.Exists(p) && !fc.FS.IsDir(p) && !deleted(dir) {
			return true, nil
		}
	}

	if !fc.FS.IsDir(fc.Config.WorkPath(rel)) {
		return false, nil
	}
	files, err := fc.filesUnder(rel)
	if err != nil {
		return false, err
	}
	for _, f := range files {
		if !deleted(f) {
			return true, nil
		}
	}
	return false, nil
}

// filesUnder lists every file below the working directory rel, ignored ones included.
func (fc *FileContext) filesUnder(rel string) ([]string, error) {
	dir := fc.Config.WorkPath(rel)
	entries, err := fc.FS.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %q: %w", dir, err)
	}
	var out []string
	for _, e := range entries {
		child := path.Join(rel, e.Name())
		if !e.IsDir() {
			out = append(out, child)
			continue
		}
		sub, err := fc.filesUnder(child)
		if err != nil {
			return nil, err
		}
		out = append(out, sub...)
	}
	return out, nil
}

func (fc *FileContext) writeTarget(rel, key string) error {
	workKey, present, err := fc.WorkingKey(rel)
	if err != nil {
		return err
	}
	if present && workKey == key {
		return nil
	}
	return fc.RestoreBlob(rel, key)
}
