package file

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/repo/store/blob"
	"github.com/keshon/gitlet/internal/util"
)

// FileContext manages the working tree and the staging index.
// Paths handed to it are repository-relative and slash separated.
type FileContext struct {
	Config  *config.RepoConfig
	BlobCtx *blob.BlobContext
	FS      fs.FS
}

// NewFileContext creates a new FileContext.
func NewFileContext(cfg *config.RepoConfig, blobs *blob.BlobContext, fsys fs.FS) *FileContext {
	return &FileContext{Config: cfg, BlobCtx: blobs, FS: fsys}
}

// CleanPath normalizes a repository-relative path. It rejects paths that
// leave the working tree or point into the metadata directory.
func CleanPath(p string) (string, error) {
	clean := path.Clean(filepath.ToSlash(p))
	switch {
	case clean == "." || clean == "" || path.IsAbs(clean):
		return "", fmt.Errorf("invalid path %q", p)
	case clean == ".." || strings.HasPrefix(clean, "../"):
		return "", fmt.Errorf("path %q is outside the working tree", p)
	case clean == config.RepoDir || strings.HasPrefix(clean, config.RepoDir+"/"):
		return "", fmt.Errorf("path %q is inside %s", p, config.RepoDir)
	}
	return clean, nil
}

// ReadWorking returns the working-tree content of rel. ok is false when
// the file does not exist.
func (fc *FileContext) ReadWorking(rel string) (data []byte, ok bool, err error) {
	p := fc.Config.WorkPath(rel)
	if fc.FS.IsDir(p) {
		return nil, false, nil
	}
	data, err = fc.FS.ReadFile(p)
	if err != nil {
		if fc.FS.IsNotExist(err) || fc.underFile(rel) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %q: %w", rel, err)
	}
	return data, true, nil
}

// underFile reports whether a parent directory of rel is a regular file
// in the working tree, which leaves no room for rel.
func (fc *FileContext) underFile(rel string) bool {
	for dir := path.Dir(rel); dir != "." && dir != "/"; dir = path.Dir(dir) {
		p := fc.Config.WorkPath(dir)
		if fc.FS.Exists(p) && !fc.FS.IsDir(p) {
			return true
		}
	}
	return false
}

// WorkingKey returns the content key of the working file rel.
func (fc *FileContext) WorkingKey(rel string) (key string, ok bool, err error) {
	data, ok, err := fc.ReadWorking(rel)
	if err != nil || !ok {
		return "", ok, err
	}
	return blob.Key(data), true, nil
}

// WriteWorking creates or replaces rel in the working tree.
func (fc *FileContext) WriteWorking(rel string, data []byte) error {
	p := fc.Config.WorkPath(rel)
	if err := fc.FS.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("mkdir for %q: %w", rel, err)
	}
	if err := util.WriteFileAtomic(fc.FS, p, data); err != nil {
		return fmt.Errorf("write %q: %w", rel, err)
	}
	return nil
}

// RestoreBlob writes the stored blob key to rel.
func (fc *FileContext) RestoreBlob(rel, key string) error {
	data, err := fc.BlobCtx.Get(key)
	if err != nil {
		return fmt.Errorf("restore %q: %w", rel, err)
	}
	return fc.WriteWorking(rel, data)
}

// RemoveWorking deletes rel from the working tree and prunes emptied directories.
func (fc *FileContext) RemoveWorking(rel string) error {
	p := fc.Config.WorkPath(rel)
	if err := fc.FS.Remove(p); err != nil && !fc.FS.IsNotExist(err) {
		return fmt.Errorf("remove %q: %w", rel, err)
	}
	util.PruneEmptyDirs(fc.FS, filepath.Dir(p), fc.Config.WorkingTreeDir)
	return nil
}
