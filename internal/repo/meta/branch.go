package meta

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/util"
)

// Branch is a named, movable pointer to a commit. Upstream records the
// branch that was current when it was created.
type Branch struct {
	Name     string `json:"name"`
	Upstream string `json:"upstream,omitempty"`
	Commit   string `json:"commit"`
}

// ValidateBranchName rejects names that cannot be stored as a branch file.
func ValidateBranchName(name string) error {
	switch {
	case strings.TrimSpace(name) == "",
		name == "HEAD",
		name == ".", name == "..",
		strings.ContainsAny(name, `/\`):
		return fmt.Errorf("branch %q: %w", name, errs.ErrInvalidBranchName)
	}
	return nil
}

func (mc *MetaContext) branchPath(name string) string {
	return filepath.Join(mc.Config.BranchesDir(), name)
}

// GetBranch returns a Branch if it exists.
func (mc *MetaContext) GetBranch(name string) (*Branch, error) {
	if ValidateBranchName(name) != nil {
		return nil, fmt.Errorf("branch %q: %w", name, errs.ErrBranchNotFound)
	}
	var b Branch
	if err := util.ReadJSON(mc.FS, mc.branchPath(name), &b); err != nil {
		if mc.FS.IsNotExist(err) {
			return nil, fmt.Errorf("branch %q: %w", name, errs.ErrBranchNotFound)
		}
		return nil, fmt.Errorf("failed to read branch %q: %w", name, err)
	}
	b.Name = name
	return &b, nil
}

// BranchExists checks for branch existence (fast).
func (mc *MetaContext) BranchExists(name string) bool {
	return ValidateBranchName(name) == nil && mc.FS.Exists(mc.branchPath(name))
}

// CreateBranch creates a new branch pointing at commitID.
func (mc *MetaContext) CreateBranch(name, upstream, commitID string) (*Branch, error) {
	if err := ValidateBranchName(name); err != nil {
		return nil, err
	}
	if mc.BranchExists(name) {
		return nil, fmt.Errorf("branch %q: %w", name, errs.ErrBranchExists)
	}
	b := &Branch{Name: name, Upstream: upstream, Commit: commitID}
	if err := mc.SaveBranch(b); err != nil {
		return nil, err
	}
	return b, nil
}

// SaveBranch writes the branch pointer.
func (mc *MetaContext) SaveBranch(b *Branch) error {
	if err := util.WriteJSON(mc.FS, mc.branchPath(b.Name), b); err != nil {
		return fmt.Errorf("failed to write branch %q: %w", b.Name, err)
	}
	return nil
}

// DeleteBranch removes the branch pointer. Commits are kept.
func (mc *MetaContext) DeleteBranch(name string) error {
	if !mc.BranchExists(name) {
		return fmt.Errorf("branch %q: %w", name, errs.ErrBranchNotFound)
	}
	if err := mc.FS.Remove(mc.branchPath(name)); err != nil {
		return fmt.Errorf("failed to remove branch %q: %w", name, err)
	}
	return nil
}

// ListBranches returns all branches sorted by name.
func (mc *MetaContext) ListBranches() ([]*Branch, error) {
	dirEntries, err := mc.FS.ReadDir(mc.Config.BranchesDir())
	if err != nil {
		return nil, fmt.Errorf("failed to read branches directory %q: %w", mc.Config.BranchesDir(), err)
	}
	branches := make([]*Branch, 0, len(dirEntries))
	for _, e := range dirEntries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".tmp-") {
			continue
		}
		b, err := mc.GetBranch(e.Name())
		if err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}
	sort.Slice(branches, func(i, j int) bool { return branches[i].Name < branches[j].Name })
	return branches, nil
}
