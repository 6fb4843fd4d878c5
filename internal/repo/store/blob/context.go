package blob

import "github.com/keshon/gitlet/internal/fs"

// BlobStatus indicates the state of a stored blob.
type BlobStatus int

const (
	OK BlobStatus = iota
	Missing
	Damaged
)

func (s BlobStatus) String() string {
	switch s {
	case OK:
		return "ok"
	case Missing:
		return "missing"
	default:
		return "damaged"
	}
}

// BlobContext handles all content storage (.gitlet/objects).
type BlobContext struct {
	Root string
	FS   fs.FS
}

// NewBlobContext creates a BlobContext rooted at dir.
func NewBlobContext(dir string, fsys fs.FS) *BlobContext {
	return &BlobContext{Root: dir, FS: fsys}
}
