package file

import (
	"fmt"

	"github.com/zeebo/xxh3"

	"github.com/keshon/gitlet/internal/util"
)

// Addition is a path staged for the next commit.
type Addition struct {
	Blob        string `json:"blob"`
	Fingerprint string `json:"fingerprint"`
	Size        int64  `json:"size"`
}

// Index is the staging area. Removals map a path to the blob captured
// when the file was removed. A path is never in both sets.
type Index struct {
	Additions map[string]Addition `json:"additions"`
	Removals  map[string]string   `json:"removals"`
}

func NewIndex() *Index {
	return &Index{
		Additions: map[string]Addition{},
		Removals:  map[string]string{},
	}
}

// Fingerprint is the fast checksum used to spot edits made after staging.
func Fingerprint(data []byte) string {
	return fmt.Sprintf("%x", xxh3.Hash128(data).Bytes())
}

func (ix *Index) Empty() bool {
	return len(ix.Additions) == 0 && len(ix.Removals) == 0
}

func (ix *Index) StageAddition(path string, a Addition) {
	delete(ix.Removals, path)
	ix.Additions[path] = a
}

func (ix *Index) StageRemoval(path, captured string) {
	delete(ix.Additions, path)
	ix.Removals[path] = captured
}

// Unstage drops path from both sets.
func (ix *Index) Unstage(path string) {
	delete(ix.Additions, path)
	delete(ix.Removals, path)
}

// Apply overlays the staged changes onto a commit file table.
func (ix *Index) Apply(files map[string]string) map[string]string {
	out := make(map[string]string, len(files)+len(ix.Additions))
	for p, k := range files {
		out[p] = k
	}
	for p, a := range ix.Additions {
		out[p] = a.Blob
	}
	for p := range ix.Removals {
		delete(out, p)
	}
	return out
}

func (ix *Index) StagedPaths() []string  { return util.SortedKeys(ix.Additions) }
func (ix *Index) RemovedPaths() []string { return util.SortedKeys(ix.Removals) }

// LoadIndex loads the staging area. A missing index is empty.
func (fc *FileContext) LoadIndex() (*Index, error) {
	ix := NewIndex()
	if err := util.ReadJSON(fc.FS, fc.Config.IndexFile(), ix); err != nil {
		if fc.FS.IsNotExist(err) {
			return NewIndex(), nil
		}
		return nil, fmt.Errorf("read index: %w", err)
	}
	if ix.Additions == nil {
		ix.Additions = map[string]Addition{}
	}
	if ix.Removals == nil {
		ix.Removals = map[string]string{}
	}
	return ix, nil
}

// SaveIndex overwrites the index completely.
func (fc *FileContext) SaveIndex(ix *Index) error {
	if err := util.WriteJSON(fc.FS, fc.Config.IndexFile(), ix); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

// ClearIndex empties the staging area.
func (fc *FileContext) ClearIndex() error {
	if err := fc.FS.Remove(fc.Config.IndexFile()); err != nil && !fc.FS.IsNotExist(err) {
		return fmt.Errorf("clear index: %w", err)
	}
	return nil
}
