package repo

import (
	"sort"
	"strings"

	"github.com/keshon/gitlet/internal/repo/store/blob"
	"github.com/keshon/gitlet/internal/repo/store/file"
)

// ChangeKind classifies an unstaged modification.
type ChangeKind string

const (
	Modified ChangeKind = "modified"
	Deleted  ChangeKind = "deleted"
)

type Change struct {
	Path string
	Kind ChangeKind
}

// Status is a summary of the branches, staging area and working tree.
type Status struct {
	Current   string
	Branches  []string
	Staged    []string
	Removed   []string
	Unstaged  []Change
	Untracked []string
}

// Status compares the working tree with the head commit and the staging area.
func (r *Repository) Status() (*Status, error) {
	st, err := r.LoadState()
	if err != nil {
		return nil, err
	}
	fc := r.Store.FileCtx
	ix, err := fc.LoadIndex()
	if err != nil {
		return nil, err
	}
	branches, err := r.Meta.ListBranches()
	if err != nil {
		return nil, err
	}
	working, err := fc.ScanWorkingTree()
	if err != nil {
		return nil, err
	}

	s := &Status{
		Current: st.Branch,
		Staged:  ix.StagedPaths(),
		Removed: ix.RemovedPaths(),
	}
	for _, b := range branches {
		s.Branches = append(s.Branches, b.Name)
	}

	present := make(map[string]bool, len(working))
	for _, p := range working {
		present[p] = true
	}
	head := st.Commit.Files

	for p, a := range ix.Additions {
		if !present[p] {
			s.Unstaged = append(s.Unstaged, Change{p, Deleted})
			continue
		}
		if changed, err := changedSinceStaged(fc, p, a); err != nil {
			return nil, err
		} else if changed {
			s.Unstaged = append(s.Unstaged, Change{p, Modified})
		}
	}
	for p, key := range head {
		if _, staged := ix.Additions[p]; staged {
			continue
		}
		if _, removed := ix.Removals[p]; removed {
			continue
		}
		if !present[p] {
			s.Unstaged = append(s.Unstaged, Change{p, Deleted})
			continue
		}
		workKey, _, err := fc.WorkingKey(p)
		if err != nil {
			return nil, err
		}
		if workKey != key {
			s.Unstaged = append(s.Unstaged, Change{p, Modified})
		}
	}
	sort.Slice(s.Unstaged, func(i, j int) bool { return s.Unstaged[i].Path < s.Unstaged[j].Path })

	for _, p := range working {
		if _, staged := ix.Additions[p]; staged {
			continue
		}
		_, tracked := head[p]
		_, removed := ix.Removals[p]
		if !tracked || removed {
			s.Untracked = append(s.Untracked, p)
		}
	}
	return s, nil
}

func changedSinceStaged(fc *file.FileContext, p string, a file.Addition) (bool, error) {
	data, ok, err := fc.ReadWorking(p)
	if err != nil || !ok {
		return !ok, err
	}
	if int64(len(data)) != a.Size || file.Fingerprint(data) != a.Fingerprint {
		return true, nil
	}
	// fingerprints collide rarely; the content key settles it
	return blob.Key(data) != a.Blob, nil
}

// String renders the status in sections.
func (s *Status) String() string {
	var b strings.Builder
	section := func(title string, lines []string) {
		b.WriteString("=== " + title + " ===\n")
		for _, l := range lines {
			b.WriteString(l + "\n")
		}
		b.WriteString("\n")
	}

	branches := make([]string, 0, len(s.Branches))
	for _, name := range s.Branches {
		if name == s.Current {
			name = "*" + name
		}
		branches = append(branches, name)
	}
	unstaged := make([]string, 0, len(s.Unstaged))
	for _, c := range s.Unstaged {
		unstaged = append(unstaged, c.Path+" ("+string(c.Kind)+")")
	}

	section("Branches", branches)
	section("Staged Files", s.Staged)
	section("Removed Files", s.Removed)
	section("Modifications Not Staged For Commit", unstaged)
	section("Untracked Files", s.Untracked)
	return b.String()
}
