package meta

import (
	"fmt"

	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/fs"
)

// MetaContext gives access to the commit store, branches and HEAD of a repository.
type MetaContext struct {
	Config *config.RepoConfig
	FS     fs.FS
}

// NewMeta returns a MetaContext for cfg.
func NewMeta(cfg *config.RepoConfig, fsys fs.FS) (*MetaContext, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil RepoConfig provided")
	}
	if fsys == nil {
		fsys = fs.NewOSFS()
	}
	return &MetaContext{Config: cfg, FS: fsys}, nil
}

// CreateMetaStructure builds a fresh layout: directories, the initial commit,
// the default branch pointing at it and HEAD.
func (mc *MetaContext) CreateMetaStructure(defaultBranch string, initial *Commit) error {
	dirs := []string{
		mc.Config.RepoDir,
		mc.Config.CommitsDir(),
		mc.Config.BranchesDir(),
		mc.Config.ObjectsDir(),
	}
	for _, d := range dirs {
		if err := mc.FS.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("failed to create dir %q: %w", d, err)
		}
	}

	if err := mc.CreateCommit(initial); err != nil {
		return err
	}
	if _, err := mc.CreateBranch(defaultBranch, "", initial.ID); err != nil {
		return fmt.Errorf("failed to create default branch: %w", err)
	}
	if err := mc.SetHead(defaultBranch, initial.ID); err != nil {
		return err
	}
	return nil
}

// IsMetaExists checks if cfg points to an initialized repository.
func IsMetaExists(cfg *config.RepoConfig, fsys fs.FS) bool {
	fi, err := fsys.Stat(cfg.HeadFile())
	return err == nil && !fi.IsDir()
}
