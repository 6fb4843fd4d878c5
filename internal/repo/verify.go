package repo

import (
	"fmt"

	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/repo/store/blob"
)

// VerifyReport lists integrity problems found in the repository.
type VerifyReport struct {
	Commits  int
	Blobs    int
	Problems []string
}

func (v *VerifyReport) addf(format string, args ...any) {
	v.Problems = append(v.Problems, fmt.Sprintf(format, args...))
}

// Verify checks commit identities, blob contents, branch targets and HEAD.
// It returns IntegrityFailure along with the report when problems exist.
func (r *Repository) Verify() (*VerifyReport, error) {
	rep := &VerifyReport{}

	ids, err := r.Meta.ListCommitIDs()
	if err != nil {
		return nil, err
	}
	checked := map[string]bool{}
	for _, id := range ids {
		rep.Commits++
		c, err := r.Meta.GetCommit(id)
		if err != nil {
			rep.addf("commit %s: %v", id, err)
			continue
		}
		if c.ID != id || c.ComputeID() != id {
			rep.addf("commit %s: identity mismatch", id)
		}
		for _, p := range c.Parents() {
			if !r.Meta.HasCommit(p) {
				rep.addf("commit %s: missing parent %s", id, p)
			}
		}
		for _, path := range c.Paths() {
			key := c.Files[path]
			if checked[key] {
				continue
			}
			checked[key] = true
			rep.Blobs++

			status, err := r.Store.BlobCtx.Verify(key)
			if err != nil {
				rep.addf("blob %s (%s): %v", key, path, err)
			} else if status != blob.OK {
				rep.addf("blob %s (%s): %s", key, path, status)
			}
		}
	}

	branches, err := r.Meta.ListBranches()
	if err != nil {
		return nil, err
	}
	for _, b := range branches {
		if !r.Meta.HasCommit(b.Commit) {
			rep.addf("branch %s: missing commit %q", b.Name, b.Commit)
		}
	}

	if err := r.CheckHead(); err != nil {
		rep.addf("%v", err)
	}

	if len(rep.Problems) > 0 {
		return rep, errs.ErrIntegrityFailure
	}
	return rep, nil
}

// CheckHead reports whether HEAD's cached commit equals its branch.
func (r *Repository) CheckHead() error {
	head, err := r.Meta.GetHead()
	if err != nil {
		return err
	}
	b, err := r.Meta.GetBranch(head.Branch)
	if err != nil {
		return fmt.Errorf("HEAD names %q: %w", head.Branch, err)
	}
	if head.CommitID != b.Commit {
		return fmt.Errorf("HEAD caches %q but branch %s is at %q", head.CommitID, b.Name, b.Commit)
	}
	return nil
}
