package meta

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/multiformats/go-multihash"

	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/util"
)

// TimeLayout is the rendering of commit timestamps.
const TimeLayout = "Mon Jan 02 15:04:05 2006 -0700"

const InitialMessage = "initial commit"

// Commit is an immutable snapshot node. Files maps repository-relative
// paths to blob keys.
type Commit struct {
	ID           string            `json:"id"`
	Message      string            `json:"message"`
	Timestamp    string            `json:"timestamp"`
	Files        map[string]string `json:"files"`
	Parent       string            `json:"parent,omitempty"`
	SecondParent string            `json:"second_parent,omitempty"`
}

// NewCommit builds a commit and computes its identity.
func NewCommit(message string, at time.Time, files map[string]string, parent, secondParent string) *Commit {
	table := make(map[string]string, len(files))
	for p, k := range files {
		table[p] = k
	}
	c := &Commit{
		Message:      message,
		Timestamp:    at.Format(TimeLayout),
		Files:        table,
		Parent:       parent,
		SecondParent: secondParent,
	}
	c.ID = c.ComputeID()
	return c
}

// InitialCommit returns the root commit shared by every repository.
func InitialCommit() *Commit {
	return NewCommit(InitialMessage, time.Unix(0, 0).UTC(), nil, "", "")
}

// ComputeID returns the lower-hex SHA-256 digest of the commit's canonical
// serialization. The stored ID field does not take part.
func (c *Commit) ComputeID() string {
	files := c.Files
	if files == nil {
		files = map[string]string{}
	}
	canonical := struct {
		Message      string            `json:"message"`
		Timestamp    string            `json:"timestamp"`
		Files        map[string]string `json:"files"`
		Parent       string            `json:"parent"`
		SecondParent string            `json:"second_parent"`
	}{c.Message, c.Timestamp, files, c.Parent, c.SecondParent}

	data, err := json.Marshal(canonical) // map keys are emitted sorted
	if err != nil {
		panic(err) // only strings involved
	}
	mh, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		panic(err)
	}
	decoded, err := multihash.Decode(mh)
	if err != nil {
		panic(err)
	}
	return hex.EncodeToString(decoded.Digest)
}

// Parents returns the parent ids, first parent first.
func (c *Commit) Parents() []string {
	var out []string
	if c.Parent != "" {
		out = append(out, c.Parent)
	}
	if c.SecondParent != "" {
		out = append(out, c.SecondParent)
	}
	return out
}

func (c *Commit) IsMerge() bool { return c.SecondParent != "" }

// Paths returns the tracked paths in sorted order.
func (c *Commit) Paths() []string { return util.SortedKeys(c.Files) }

// Tracks reports whether path is in the commit's file table.
func (c *Commit) Tracks(path string) bool {
	_, ok := c.Files[path]
	return ok
}

// FormatLogEntry renders the commit as printed by log and global-log.
func FormatLogEntry(c *Commit) string {
	var b strings.Builder
	b.WriteString("===\n")
	b.WriteString("commit " + c.ID + "\n")
	if c.IsMerge() {
		fmt.Fprintf(&b, "Merge: %s %s\n", short(c.Parent), short(c.SecondParent))
	}
	b.WriteString("Date: " + c.Timestamp + "\n")
	b.WriteString(c.Message + "\n")
	return b.String()
}

func short(id string) string {
	if len(id) > 7 {
		return id[:7]
	}
	return id
}

func (mc *MetaContext) commitPath(id string) string {
	return filepath.Join(mc.Config.CommitsDir(), id+".json")
}

// GetCommit reads a commit by its full ID.
func (mc *MetaContext) GetCommit(commitID string) (*Commit, error) {
	var c Commit
	if err := util.ReadJSON(mc.FS, mc.commitPath(commitID), &c); err != nil {
		if mc.FS.IsNotExist(err) {
			return nil, fmt.Errorf("commit %q: %w", commitID, errs.ErrCommitNotFound)
		}
		return nil, fmt.Errorf("failed to read commit %q: %w", commitID, err)
	}
	if c.Files == nil {
		c.Files = map[string]string{}
	}
	return &c, nil
}

// CreateCommit writes a commit to the store and prepends it to the global log.
// Writing a commit that already exists is a no-op.
func (mc *MetaContext) CreateCommit(commit *Commit) error {
	if commit.ID == "" {
		commit.ID = commit.ComputeID()
	}
	if mc.HasCommit(commit.ID) {
		return nil
	}
	if err := util.WriteJSON(mc.FS, mc.commitPath(commit.ID), commit); err != nil {
		return fmt.Errorf("failed to write commit %q: %w", commit.ID, err)
	}
	if err := mc.prependGlobalLog(commit); err != nil {
		return err
	}
	return nil
}

// HasCommit reports whether a commit with the exact id is stored.
func (mc *MetaContext) HasCommit(id string) bool {
	return id != "" && mc.FS.Exists(mc.commitPath(id))
}

// ListCommitIDs returns every stored commit id, sorted.
func (mc *MetaContext) ListCommitIDs() ([]string, error) {
	entries, err := mc.FS.ReadDir(mc.Config.CommitsDir())
	if err != nil {
		return nil, fmt.Errorf("failed to read commits directory %q: %w", mc.Config.CommitsDir(), err)
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}

// ResolveCommitID expands an exact or abbreviated id. Unknown and
// ambiguous prefixes are CommitNotFound.
func (mc *MetaContext) ResolveCommitID(prefix string) (string, error) {
	if prefix == "" || strings.ContainsAny(prefix, `/\.`) {
		return "", errs.ErrCommitNotFound
	}
	if mc.HasCommit(prefix) {
		return prefix, nil
	}

	ids, err := mc.ListCommitIDs()
	if err != nil {
		return "", err
	}
	var match string
	for _, id := range ids {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		if match != "" {
			return "", fmt.Errorf("prefix %q is ambiguous: %w", prefix, errs.ErrCommitNotFound)
		}
		match = id
	}
	if match == "" {
		return "", fmt.Errorf("prefix %q: %w", prefix, errs.ErrCommitNotFound)
	}
	return match, nil
}

// FindByMessage returns the sorted ids of all commits whose message equals message.
func (mc *MetaContext) FindByMessage(message string) ([]string, error) {
	ids, err := mc.ListCommitIDs()
	if err != nil {
		return nil, err
	}
	var out []string
	for _, id := range ids {
		c, err := mc.GetCommit(id)
		if err != nil {
			return nil, err
		}
		if c.Message == message {
			out = append(out, id)
		}
	}
	return out, nil
}
