package repo

import (
	"fmt"

	"github.com/keshon/gitlet/internal/errs"
)

// Add stages the working content of path for the next commit.
func (r *Repository) Add(path string) error {
	rel, err := r.RelPath(path)
	if err != nil {
		return fmt.Errorf("%s: %w", err, errs.ErrFileNotFound)
	}
	st, err := r.LoadState()
	if err != nil {
		return err
	}
	return r.Store.FileCtx.Add(rel, st.Commit.Files)
}

// Remove unstages path or stages its removal.
func (r *Repository) Remove(path string) error {
	rel, err := r.RelPath(path)
	if err != nil {
		return fmt.Errorf("%s: %w", err, errs.ErrNothingToRemove)
	}
	st, err := r.LoadState()
	if err != nil {
		return err
	}
	return r.Store.FileCtx.Remove(rel, st.Commit.Files)
}
