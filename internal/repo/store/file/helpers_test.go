package file_test

import (
	"testing"

	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/repo/store/blob"
	"github.com/keshon/gitlet/internal/repo/store/file"
)

// newTestFC returns a FileContext over an in-memory working tree at /work.
func newTestFC(t *testing.T) *file.FileContext {
	t.Helper()
	m := fs.NewMemoryFS()
	cfg := config.NewRepoConfig("/work")
	if err := m.MkdirAll(cfg.ObjectsDir(), 0o755); err != nil {
		t.Fatal(err)
	}
	return file.NewFileContext(cfg, blob.NewBlobContext(cfg.ObjectsDir(), m), m)
}

func writeWork(t *testing.T, fc *file.FileContext, rel, content string) {
	t.Helper()
	if err := fc.WriteWorking(rel, []byte(content)); err != nil {
		t.Fatal(err)
	}
}

func readWork(t *testing.T, fc *file.FileContext, rel string) (string, bool) {
	t.Helper()
	data, ok, err := fc.ReadWorking(rel)
	if err != nil {
		t.Fatal(err)
	}
	return string(data), ok
}

// putBlob stores content and returns its key.
func putBlob(t *testing.T, fc *file.FileContext, content string) string {
	t.Helper()
	key, err := fc.BlobCtx.Put([]byte(content))
	if err != nil {
		t.Fatal(err)
	}
	return key
}
