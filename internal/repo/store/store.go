package store

import (
	"fmt"

	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/repo/store/blob"
	"github.com/keshon/gitlet/internal/repo/store/file"
)

// StoreContext is the high-level store abstraction that unifies all subsystems.
type StoreContext struct {
	Config  *config.RepoConfig
	BlobCtx *blob.BlobContext
	FileCtx *file.FileContext
}

// NewStoreOptions allows optional dependency injection (FS, BlobCtx)
type NewStoreOptions struct {
	FS      fs.FS
	BlobCtx *blob.BlobContext
	FileCtx *file.FileContext
}

// NewStoreDefault creates a store with default dependencies.
func NewStoreDefault(cfg *config.RepoConfig) (*StoreContext, error) {
	return NewStore(cfg, nil)
}

// NewStore creates a store with optional dependencies.
func NewStore(cfg *config.RepoConfig, opts *NewStoreOptions) (*StoreContext, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil RepoConfig provided")
	}

	// Resolve FS
	fsys := fs.FS(fs.NewOSFS())
	if opts != nil && opts.FS != nil {
		fsys = opts.FS
	}

	// Resolve BlobContext
	blobCtx := blob.NewBlobContext(cfg.ObjectsDir(), fsys)
	if opts != nil && opts.BlobCtx != nil {
		blobCtx = opts.BlobCtx
	}

	// Resolve FileContext
	fileCtx := file.NewFileContext(cfg, blobCtx, fsys)
	if opts != nil && opts.FileCtx != nil {
		fileCtx = opts.FileCtx
	}

	return &StoreContext{
		Config:  cfg,
		BlobCtx: blobCtx,
		FileCtx: fileCtx,
	}, nil
}
