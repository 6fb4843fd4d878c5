package repo

import (
	"fmt"
	"log/slog"

	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/repo/meta"
)

// CheckoutFile restores path to its version in the head commit.
func (r *Repository) CheckoutFile(path string) error {
	st, err := r.LoadState()
	if err != nil {
		return err
	}
	return r.checkoutFileFrom(st.Commit, path)
}

// CheckoutFileAt restores path to its version in the commit named by prefix.
func (r *Repository) CheckoutFileAt(prefix, path string) error {
	id, err := r.Meta.ResolveCommitID(prefix)
	if err != nil {
		return err
	}
	c, err := r.Meta.GetCommit(id)
	if err != nil {
		return err
	}
	return r.checkoutFileFrom(c, path)
}

func (r *Repository) checkoutFileFrom(c *meta.Commit, path string) error {
	rel, err := r.RelPath(path)
	if err != nil {
		return fmt.Errorf("%s: %w", err, errs.ErrNotInCommit)
	}
	key, ok := c.Files[rel]
	if !ok {
		return fmt.Errorf("%s at %s: %w", rel, c.ID, errs.ErrNotInCommit)
	}
	return r.Store.FileCtx.RestoreBlob(rel, key)
}

// CheckoutBranch switches the working tree and HEAD to branch name.
func (r *Repository) CheckoutBranch(name string) error {
	st, err := r.LoadState()
	if err != nil {
		return err
	}
	if !r.Meta.BranchExists(name) {
		return fmt.Errorf("branch %q: %w", name, errs.ErrNoSuchBranch)
	}
	if name == st.Branch {
		return errs.ErrAlreadyOnBranch
	}
	b, err := r.Meta.GetBranch(name)
	if err != nil {
		return err
	}
	target, err := r.Meta.GetCommit(b.Commit)
	if err != nil {
		return err
	}

	if err := r.Store.FileCtx.ApplySnapshot(st.Commit.Files, target.Files, r.Settings.Preflight); err != nil {
		return err
	}
	if err := r.Meta.SetHead(name, target.ID); err != nil {
		return err
	}
	if err := r.Store.FileCtx.ClearIndex(); err != nil {
		return err
	}
	slog.Debug("switched branch", "from", st.Branch, "to", name)

	_, err = r.RenderLog()
	return err
}

// Reset moves the current branch to the commit named by prefix and checks it out.
func (r *Repository) Reset(prefix string) error {
	st, err := r.LoadState()
	if err != nil {
		return err
	}
	id, err := r.Meta.ResolveCommitID(prefix)
	if err != nil {
		return err
	}
	target, err := r.Meta.GetCommit(id)
	if err != nil {
		return err
	}

	if err := r.Store.FileCtx.ApplySnapshot(st.Commit.Files, target.Files, r.Settings.Preflight); err != nil {
		return err
	}
	if err := r.Meta.MoveBranch(st.Branch, target.ID); err != nil {
		return err
	}
	if err := r.Store.FileCtx.ClearIndex(); err != nil {
		return err
	}
	slog.Debug("branch moved", "branch", st.Branch, "to", target.ID)

	_, err = r.RenderLog()
	return err
}
