package repo

import (
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/repo/meta"
)

// Commit records the staged changes as a new commit on the current branch.
func (r *Repository) Commit(message string) (*meta.Commit, error) {
	st, err := r.LoadState()
	if err != nil {
		return nil, err
	}
	return r.commit(st, message, "", false)
}

// commit builds the next commit from the staging area. Merge commits pass
// secondParent and may be created with nothing staged.
func (r *Repository) commit(st State, message, secondParent string, allowEmpty bool) (*meta.Commit, error) {
	if strings.TrimSpace(message) == "" {
		return nil, errs.ErrEmptyMessage
	}
	ix, err := r.Store.FileCtx.LoadIndex()
	if err != nil {
		return nil, err
	}
	if ix.Empty() && !allowEmpty {
		return nil, errs.ErrNothingStaged
	}

	c := meta.NewCommit(message, r.now(), ix.Apply(st.Commit.Files), st.Commit.ID, secondParent)
	if err := r.Meta.CreateCommit(c); err != nil {
		return nil, err
	}
	if err := r.Meta.MoveBranch(st.Branch, c.ID); err != nil {
		return nil, err
	}
	if err := r.Store.FileCtx.ClearIndex(); err != nil {
		return nil, err
	}
	slog.Debug("commit created", "id", c.ID, "branch", st.Branch, "files", len(c.Files))

	if _, err := r.RenderLog(); err != nil {
		return nil, err
	}
	return c, nil
}

// Log walks first-parent links from HEAD to the initial commit.
func (r *Repository) Log() iter.Seq2[*meta.Commit, error] {
	return func(yield func(*meta.Commit, error) bool) {
		st, err := r.LoadState()
		if err != nil {
			yield(nil, err)
			return
		}
		for c, err := range r.Meta.Walk(st.Commit.ID) {
			if !yield(c, err) || err != nil {
				return
			}
		}
	}
}

// RenderLog renders the log of the current branch and refreshes the log cache.
func (r *Repository) RenderLog() (string, error) {
	var b strings.Builder
	for c, err := range r.Log() {
		if err != nil {
			return "", err
		}
		b.WriteString(meta.FormatLogEntry(c))
		b.WriteString("\n")
	}
	out := b.String()
	if err := r.Meta.WriteLog(out); err != nil {
		return "", err
	}
	return out, nil
}

// GlobalLog returns every commit ever made, newest first.
func (r *Repository) GlobalLog() (string, error) {
	return r.Meta.ReadGlobalLog()
}

// Find returns the sorted ids of the commits with the given message.
func (r *Repository) Find(message string) ([]string, error) {
	ids, err := r.Meta.FindByMessage(message)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("find %q: %w", message, errs.ErrNoCommitWithMessage)
	}
	return ids, nil
}
