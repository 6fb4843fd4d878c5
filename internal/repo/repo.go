package repo

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/repo/meta"
	"github.com/keshon/gitlet/internal/repo/store"
	"github.com/keshon/gitlet/internal/repo/store/file"
	"github.com/keshon/gitlet/internal/util"
)

// Repository represents an initialized repository.
type Repository struct {
	Config   *config.RepoConfig
	Meta     *meta.MetaContext
	Store    *store.StoreContext
	Settings config.Settings

	fs      fs.FS
	now     func() time.Time
	workDir string
}

// Options configures how a repository is opened. Zero values select the
// OS filesystem, the wall clock and the working tree root as working directory.
type Options struct {
	FS      fs.FS
	Now     func() time.Time
	WorkDir string // directory user paths are relative to
}

func newRepository(dir string, opts Options) (*Repository, error) {
	fsys := opts.FS
	if fsys == nil {
		fsys = fs.NewOSFS()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	cfg := config.NewRepoConfig(dir)
	mc, err := meta.NewMeta(cfg, fsys)
	if err != nil {
		return nil, err
	}
	st, err := store.NewStore(cfg, &store.NewStoreOptions{FS: fsys})
	if err != nil {
		return nil, fmt.Errorf("failed to init store: %w", err)
	}

	workDir := opts.WorkDir
	if workDir == "" {
		workDir = dir
	}
	return &Repository{
		Config:  cfg,
		Meta:    mc,
		Store:   st,
		fs:      fsys,
		now:     now,
		workDir: workDir,
	}, nil
}

// Init creates a repository in dir with the initial commit on the default branch.
func Init(dir string, opts Options) (*Repository, error) {
	r, err := newRepository(dir, opts)
	if err != nil {
		return nil, err
	}
	if meta.IsMetaExists(r.Config, r.fs) || r.fs.IsDir(r.Config.RepoDir) {
		return nil, errs.ErrAlreadyInitialized
	}

	r.Settings = config.DefaultSettings()
	if err := r.Meta.CreateMetaStructure(r.Settings.DefaultBranch, meta.InitialCommit()); err != nil {
		return nil, fmt.Errorf("failed to create repository: %w", err)
	}
	if err := util.WriteJSON(r.fs, r.Config.SettingsFile(), r.Settings); err != nil {
		return nil, fmt.Errorf("failed to save config.json: %w", err)
	}
	if _, err := r.RenderLog(); err != nil {
		return nil, err
	}
	return r, nil
}

// Open opens the repository whose working tree is dir.
func Open(dir string, opts Options) (*Repository, error) {
	r, err := newRepository(dir, opts)
	if err != nil {
		return nil, err
	}
	if !meta.IsMetaExists(r.Config, r.fs) {
		return nil, errs.ErrNotInitialized
	}
	r.Settings = config.LoadSettings(r.fs, r.Config)
	return r, nil
}

// OpenFrom opens the repository enclosing start.
func OpenFrom(start string, opts Options) (*Repository, error) {
	fsys := opts.FS
	if fsys == nil {
		fsys = fs.NewOSFS()
	}
	root, ok := config.ResolveWorkingTreeRoot(fsys, start)
	if !ok {
		return nil, errs.ErrNotInitialized
	}
	if opts.WorkDir == "" {
		opts.WorkDir = start
	}
	return Open(root, opts)
}

// State is the current branch and the commit it points at, read once per
// operation.
type State struct {
	Branch string
	Commit *meta.Commit
}

// LoadState reads HEAD and resolves its branch. The branch pointer wins
// over a stale HEAD cache.
func (r *Repository) LoadState() (State, error) {
	head, err := r.Meta.GetHead()
	if err != nil {
		return State{}, err
	}
	b, err := r.Meta.GetBranch(head.Branch)
	if err != nil {
		return State{}, fmt.Errorf("HEAD names %q: %w", head.Branch, err)
	}
	c, err := r.Meta.GetCommit(b.Commit)
	if err != nil {
		return State{}, err
	}
	return State{Branch: b.Name, Commit: c}, nil
}

// RelPath turns a user-supplied path into a repository-relative one.
func (r *Repository) RelPath(p string) (string, error) {
	if !filepath.IsAbs(p) {
		p = filepath.Join(r.workDir, p)
	}
	rel, err := filepath.Rel(r.Config.WorkingTreeDir, p)
	if err != nil {
		return "", err
	}
	return file.CleanPath(rel)
}
