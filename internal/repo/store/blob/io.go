package blob

import (
	"fmt"
	"path/filepath"

	"github.com/keshon/gitlet/internal/util"
)

func (bc *BlobContext) path(key string) string {
	return filepath.Join(bc.Root, key)
}

// Put stores data and returns its key. Storing known content is a no-op.
func (bc *BlobContext) Put(data []byte) (string, error) {
	key := Key(data)
	if bc.Has(key) {
		return key, nil // already exists
	}
	if err := bc.FS.MkdirAll(bc.Root, 0o755); err != nil {
		return "", fmt.Errorf("create objects dir: %w", err)
	}
	if err := util.WriteFileAtomic(bc.FS, bc.path(key), data); err != nil {
		return "", fmt.Errorf("write blob %s: %w", key, err)
	}
	return key, nil
}

// Get retrieves a blob by key.
func (bc *BlobContext) Get(key string) ([]byte, error) {
	data, err := bc.FS.ReadFile(bc.path(key))
	if err != nil {
		return nil, fmt.Errorf("read blob %q: %w", key, err)
	}
	return data, nil
}

// Has checks if a blob exists.
func (bc *BlobContext) Has(key string) bool {
	return bc.FS.Exists(bc.path(key))
}
