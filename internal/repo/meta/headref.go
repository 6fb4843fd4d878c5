package meta

import (
	"fmt"
	"strings"

	"github.com/keshon/gitlet/internal/util"
)

const refPrefix = "ref: branches/"

// HeadRef is the content of HEAD: the current branch and a cached copy of
// its commit id.
type HeadRef struct {
	Branch   string
	CommitID string
}

func (h HeadRef) String() string { return "branches/" + h.Branch }

// GetHead reads HEAD for this repository.
func (mc *MetaContext) GetHead() (HeadRef, error) {
	data, err := mc.FS.ReadFile(mc.Config.HeadFile())
	if err != nil {
		return HeadRef{}, fmt.Errorf("failed to read HEAD %q: %w", mc.Config.HeadFile(), err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if !strings.HasPrefix(lines[0], refPrefix) {
		return HeadRef{}, fmt.Errorf("invalid HEAD content: %q", string(data))
	}

	ref := HeadRef{Branch: strings.TrimPrefix(lines[0], refPrefix)}
	if ref.Branch == "" {
		return HeadRef{}, fmt.Errorf("HEAD ref is empty")
	}
	if len(lines) > 1 {
		ref.CommitID = strings.TrimSpace(lines[1])
	}
	return ref, nil
}

// SetHead points HEAD at branch and caches commitID.
func (mc *MetaContext) SetHead(branch, commitID string) error {
	content := refPrefix + branch + "\n" + commitID + "\n"
	if err := util.WriteFileAtomic(mc.FS, mc.Config.HeadFile(), []byte(content)); err != nil {
		return fmt.Errorf("failed to write HEAD %q: %w", mc.Config.HeadFile(), err)
	}
	return nil
}

// MoveBranch retargets branch and refreshes HEAD's cache when HEAD names it.
func (mc *MetaContext) MoveBranch(name, commitID string) error {
	b, err := mc.GetBranch(name)
	if err != nil {
		return err
	}
	b.Commit = commitID
	if err := mc.SaveBranch(b); err != nil {
		return err
	}

	head, err := mc.GetHead()
	if err != nil {
		return err
	}
	if head.Branch == name {
		return mc.SetHead(name, commitID)
	}
	return nil
}
