package repo_test

import (
	"testing"
	"time"

	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/repo"
)

type testClock struct{ t time.Time }

// now advances one minute per call so every commit gets its own timestamp.
func (c *testClock) now() time.Time {
	c.t = c.t.Add(time.Minute)
	return c.t
}

func newTestRepo(t *testing.T) *repo.Repository {
	t.Helper()
	m := fs.NewMemoryFS()
	if err := m.MkdirAll("/work", 0o755); err != nil {
		t.Fatal(err)
	}
	clock := &testClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	r, err := repo.Init("/work", repo.Options{FS: m, Now: clock.now})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return r
}

func write(t *testing.T, r *repo.Repository, rel, content string) {
	t.Helper()
	if err := r.Store.FileCtx.WriteWorking(rel, []byte(content)); err != nil {
		t.Fatal(err)
	}
}

func read(t *testing.T, r *repo.Repository, rel string) (string, bool) {
	t.Helper()
	data, ok, err := r.Store.FileCtx.ReadWorking(rel)
	if err != nil {
		t.Fatal(err)
	}
	return string(data), ok
}

func remove(t *testing.T, r *repo.Repository, rel string) {
	t.Helper()
	if err := r.Store.FileCtx.RemoveWorking(rel); err != nil {
		t.Fatal(err)
	}
}

// commitFiles writes and stages files (empty content removes the file) and commits.
func commitFiles(t *testing.T, r *repo.Repository, msg string, files map[string]string) string {
	t.Helper()
	for p, content := range files {
		if content == "" {
			if err := r.Remove(p); err != nil {
				t.Fatalf("rm %s: %v", p, err)
			}
			continue
		}
		write(t, r, p, content)
		if err := r.Add(p); err != nil {
			t.Fatalf("add %s: %v", p, err)
		}
	}
	c, err := r.Commit(msg)
	if err != nil {
		t.Fatalf("commit %q: %v", msg, err)
	}
	return c.ID
}

func headID(t *testing.T, r *repo.Repository) string {
	t.Helper()
	st, err := r.LoadState()
	if err != nil {
		t.Fatal(err)
	}
	return st.Commit.ID
}

func checkout(t *testing.T, r *repo.Repository, branch string) {
	t.Helper()
	if err := r.CheckoutBranch(branch); err != nil {
		t.Fatalf("checkout %s: %v", branch, err)
	}
}

func branch(t *testing.T, r *repo.Repository, name string) {
	t.Helper()
	if _, err := r.CreateBranch(name); err != nil {
		t.Fatalf("branch %s: %v", name, err)
	}
}
