package config

import (
	"path/filepath"

	"github.com/keshon/gitlet/internal/fs"
)

// ResolveWorkingTreeRoot walks up from start until it finds a directory
// holding a .gitlet directory. It returns false when no repository is found.
func ResolveWorkingTreeRoot(fsys fs.FS, start string) (string, bool) {
	cwd, err := filepath.Abs(start)
	if err != nil {
		cwd = filepath.Clean(start)
	}
	for {
		if fsys.IsDir(filepath.Join(cwd, RepoDir)) {
			return cwd, true
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break // reached filesystem root
		}
		cwd = parent
	}
	return "", false
}
