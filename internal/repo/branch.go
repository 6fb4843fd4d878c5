package repo

import (
	"fmt"
	"log/slog"

	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/repo/meta"
)

// CreateBranch creates a branch at the head commit, recording the current
// branch as its upstream.
func (r *Repository) CreateBranch(name string) (*meta.Branch, error) {
	st, err := r.LoadState()
	if err != nil {
		return nil, err
	}
	b, err := r.Meta.CreateBranch(name, st.Branch, st.Commit.ID)
	if err != nil {
		return nil, err
	}
	slog.Debug("branch created", "name", name, "commit", st.Commit.ID)
	return b, nil
}

// RemoveBranch deletes a branch pointer other than the current one.
func (r *Repository) RemoveBranch(name string) error {
	st, err := r.LoadState()
	if err != nil {
		return err
	}
	if !r.Meta.BranchExists(name) {
		return fmt.Errorf("branch %q: %w", name, errs.ErrBranchNotFound)
	}
	if name == st.Branch {
		return errs.ErrCannotRemoveCurrent
	}
	return r.Meta.DeleteBranch(name)
}

// ListBranches returns every branch sorted by name.
func (r *Repository) ListBranches() ([]*meta.Branch, error) {
	return r.Meta.ListBranches()
}
