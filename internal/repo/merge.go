package repo

import (
	"fmt"
	"log/slog"

	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/repo/meta"
	"github.com/keshon/gitlet/internal/repo/store/file"
	"github.com/keshon/gitlet/internal/util"
)

// MergeResult describes a completed merge. A fast-forward moves the
// current branch and creates no commit.
type MergeResult struct {
	FastForward bool
	Commit      *meta.Commit
	Conflicts   []string
}

// Merge merges the given branch into the current one.
func (r *Repository) Merge(given string) (*MergeResult, error) {
	st, err := r.LoadState()
	if err != nil {
		return nil, err
	}
	fc := r.Store.FileCtx

	ix, err := fc.LoadIndex()
	if err != nil {
		return nil, err
	}
	if !ix.Empty() {
		return nil, errs.ErrUncommittedChanges
	}

	gb, err := r.Meta.GetBranch(given)
	if err != nil {
		return nil, err
	}
	if gb.Name == st.Branch {
		return nil, errs.ErrSelfMerge
	}

	graph := newCommitGraph(r.Meta)
	current := st.Commit
	other, err := graph.get(gb.Commit)
	if err != nil {
		return nil, err
	}

	for _, p := range other.Paths() {
		blocked, err := fc.Obstructed(p, current.Files, other.Files[p])
		if err != nil {
			return nil, err
		}
		if blocked {
			return nil, fmt.Errorf("%s: %w", p, errs.ErrUntrackedObstruction)
		}
	}

	splitID, err := graph.mergeBase(current.ID, other.ID)
	if err != nil {
		return nil, err
	}
	slog.Debug("merge base", "current", current.ID, "given", other.ID, "split", splitID)

	if splitID == other.ID {
		return nil, errs.ErrAncestorMerge
	}
	if splitID == current.ID {
		if err := fc.ApplySnapshot(current.Files, other.Files, r.Settings.Preflight); err != nil {
			return nil, err
		}
		if err := r.Meta.MoveBranch(st.Branch, other.ID); err != nil {
			return nil, err
		}
		if err := fc.ClearIndex(); err != nil {
			return nil, err
		}
		if _, err := r.RenderLog(); err != nil {
			return nil, err
		}
		slog.Debug("fast-forward", "branch", st.Branch, "to", other.ID)
		return &MergeResult{FastForward: true}, nil
	}

	split, err := graph.get(splitID)
	if err != nil {
		return nil, err
	}

	res := &MergeResult{}
	actions := map[string]mergeAction{}
	paths := unionPaths(split.Files, current.Files, other.Files)
	for _, p := range paths {
		act := decide(split.Files, current.Files, other.Files, p)
		slog.Debug("merge decision", "path", p, "action", act)
		actions[p] = act
	}

	// removals first so a path can turn from file to directory
	for _, p := range paths {
		if actions[p] != removeFile {
			continue
		}
		ix.StageRemoval(p, current.Files[p])
		if err := fc.RemoveWorking(p); err != nil {
			return nil, err
		}
	}
	for _, p := range paths {
		switch actions[p] {
		case takeGiven:
			if err := r.stageContent(ix, p, other.Files[p]); err != nil {
				return nil, err
			}
		case conflict:
			if err := r.writeConflict(ix, p, current.Files, other.Files); err != nil {
				return nil, err
			}
			res.Conflicts = append(res.Conflicts, p)
		}
	}
	if err := fc.SaveIndex(ix); err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("Merged %s into %s.", gb.Name, st.Branch)
	c, err := r.commit(st, msg, other.ID, true)
	if err != nil {
		return nil, err
	}
	res.Commit = c
	return res, nil
}

type mergeAction int

const (
	keep mergeAction = iota
	takeGiven
	removeFile
	conflict
)

func (a mergeAction) String() string {
	switch a {
	case takeGiven:
		return "take-given"
	case removeFile:
		return "remove"
	case conflict:
		return "conflict"
	default:
		return "keep"
	}
}

// decide applies the three-way rule to one path of the split (s),
// current (c) and given (g) file tables.
func decide(s, c, g map[string]string, p string) mergeAction {
	sv, inS := s[p]
	cv, inC := c[p]
	gv, inG := g[p]

	switch {
	case inS && inC && inG:
		if gv != sv && cv == sv {
			return takeGiven
		}
		if gv != sv && cv != sv && gv != cv {
			return conflict
		}
	case inS && inC && !inG:
		if cv == sv {
			return removeFile
		}
		return conflict
	case inS && !inC && inG:
		if gv != sv {
			return conflict
		}
	case !inS && !inC && inG:
		return takeGiven
	case !inS && inC && inG:
		if cv != gv {
			return conflict
		}
	}
	return keep
}

func unionPaths(tables ...map[string]string) []string {
	all := map[string]struct{}{}
	for _, t := range tables {
		for p := range t {
			all[p] = struct{}{}
		}
	}
	return util.SortedKeys(all)
}

// stageContent writes a stored blob to the working tree and stages it.
func (r *Repository) stageContent(ix *file.Index, p, key string) error {
	data, err := r.Store.BlobCtx.Get(key)
	if err != nil {
		return err
	}
	if err := r.Store.FileCtx.WriteWorking(p, data); err != nil {
		return err
	}
	ix.StageAddition(p, file.Addition{Blob: key, Fingerprint: file.Fingerprint(data), Size: int64(len(data))})
	return nil
}

// writeConflict replaces p with both versions between conflict markers and
// stages the result. An absent side contributes nothing.
func (r *Repository) writeConflict(ix *file.Index, p string, current, given map[string]string) error {
	side := func(t map[string]string) ([]byte, error) {
		key, ok := t[p]
		if !ok {
			return nil, nil
		}
		return r.Store.BlobCtx.Get(key)
	}
	cur, err := side(current)
	if err != nil {
		return err
	}
	giv, err := side(given)
	if err != nil {
		return err
	}

	data := ConflictContent(cur, giv)
	key, err := r.Store.BlobCtx.Put(data)
	if err != nil {
		return err
	}
	if err := r.Store.FileCtx.WriteWorking(p, data); err != nil {
		return err
	}
	ix.StageAddition(p, file.Addition{Blob: key, Fingerprint: file.Fingerprint(data), Size: int64(len(data))})
	return nil
}

// ConflictContent renders a conflicted file.
func ConflictContent(current, given []byte) []byte {
	out := make([]byte, 0, len(current)+len(given)+32)
	out = append(out, "<<<<<<< HEAD\n"...)
	out = append(out, current...)
	out = append(out, "=======\n"...)
	out = append(out, given...)
	out = append(out, ">>>>>>>\n"...)
	return out
}
