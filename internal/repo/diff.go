package repo

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Diff renders unified diffs between the head version and the working
// version of tracked files. With no paths every tracked file is compared.
// Deleted files diff against empty content.
func (r *Repository) Diff(paths ...string) (string, error) {
	st, err := r.LoadState()
	if err != nil {
		return "", err
	}

	selected := st.Commit.Paths()
	if len(paths) > 0 {
		selected = nil
		for _, p := range paths {
			rel, err := r.RelPath(p)
			if err != nil {
				return "", err
			}
			if !st.Commit.Tracks(rel) {
				continue
			}
			selected = append(selected, rel)
		}
	}

	var out string
	for _, p := range selected {
		headData, err := r.Store.BlobCtx.Get(st.Commit.Files[p])
		if err != nil {
			return "", err
		}
		workData, _, err := r.Store.FileCtx.ReadWorking(p)
		if err != nil {
			return "", err
		}
		if string(headData) == string(workData) {
			continue
		}

		text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        splitLines(headData),
			B:        splitLines(workData),
			FromFile: "a/" + p,
			ToFile:   "b/" + p,
			Context:  3,
		})
		if err != nil {
			return "", fmt.Errorf("diff %s: %w", p, err)
		}
		out += text
	}
	return out, nil
}

// splitLines cuts content into newline-terminated lines. A final line
// without a newline gets one; empty content has no lines.
func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	lines := strings.SplitAfter(string(data), "\n")
	if last := lines[len(lines)-1]; last == "" {
		lines = lines[:len(lines)-1]
	} else {
		lines[len(lines)-1] = last + "\n"
	}
	return lines
}
