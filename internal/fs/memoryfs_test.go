package fs_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/keshon/gitlet/internal/fs"
)

func TestMemoryFS_WriteReadFile(t *testing.T) {
	m := fs.NewMemoryFS()

	if err := m.MkdirAll("dir/sub", 0o755); err != nil {
		t.Fatal(err)
	}

	content := []byte("hello world")
	if err := m.WriteFile("dir/sub/file.txt", content, 0o644); err != nil {
		t.Fatal(err)
	}

	read, err := m.ReadFile("dir/sub/file.txt")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(read, content) {
		t.Fatalf("expected %q, got %q", content, read)
	}

	// returned slice is a copy
	read[0] = 'X'
	again, _ := m.ReadFile("dir/sub/file.txt")
	if again[0] != 'h' {
		t.Fatal("ReadFile must return a copy")
	}
}

func TestMemoryFS_WriteFileNonExistentDir(t *testing.T) {
	m := fs.NewMemoryFS()
	err := m.WriteFile("nope/file.txt", []byte("x"), 0o644)
	if err == nil {
		t.Fatal("expected error writing to non-existent dir")
	}
	if !m.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestMemoryFS_OpenAndClose(t *testing.T) {
	m := fs.NewMemoryFS()
	m.MkdirAll("d", 0o755)
	m.WriteFile("d/f", []byte("abc"), 0o644)

	f, err := m.Open("d/f")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	buf := make([]byte, 3)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		t.Fatal(err)
	}
	if n != 3 || string(buf) != "abc" {
		t.Fatalf("unexpected read %q", buf)
	}
}

func TestMemoryFS_Remove(t *testing.T) {
	m := fs.NewMemoryFS()
	m.MkdirAll("d", 0o755)
	m.WriteFile("d/f", []byte("x"), 0o644)

	if err := m.Remove("d"); err == nil {
		t.Fatal("expected error removing non-empty dir")
	}
	if err := m.Remove("d/f"); err != nil {
		t.Fatal(err)
	}
	if m.Exists("d/f") {
		t.Fatal("file should be removed")
	}
	if err := m.Remove("d"); err != nil {
		t.Fatalf("empty dir should be removable: %v", err)
	}
	if err := m.Remove("missing"); !m.IsNotExist(err) {
		t.Fatal("expected not-exist error")
	}
}

func TestMemoryFS_Rename(t *testing.T) {
	m := fs.NewMemoryFS()
	m.MkdirAll("dir", 0o755)
	m.WriteFile("dir/f", []byte("data"), 0o644)

	if err := m.Rename("dir/f", "dir/f2"); err != nil {
		t.Fatal(err)
	}
	if m.Exists("dir/f") || !m.Exists("dir/f2") {
		t.Fatal("file rename failed")
	}
	if err := m.Rename("nope", "new"); !m.IsNotExist(err) {
		t.Fatal("expected not-exist error")
	}
}

func TestMemoryFS_ReadDirRoot(t *testing.T) {
	m := fs.NewMemoryFS()
	m.MkdirAll("sub", 0o755)
	m.WriteFile("b.txt", []byte("b"), 0o644)
	m.WriteFile("a.txt", []byte("a"), 0o644)
	m.WriteFile("sub/c.txt", []byte("c"), 0o644)

	entries, err := m.ReadDir(".")
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	want := []string{"a.txt", "b.txt", "sub"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
	if !entries[2].IsDir() {
		t.Fatal("sub should be a dir entry")
	}
}

func TestMemoryFS_ReadDirNested(t *testing.T) {
	m := fs.NewMemoryFS()
	m.MkdirAll("root/a", 0o755)
	m.MkdirAll("root/b", 0o755)
	m.WriteFile("root/f1.txt", []byte("x"), 0o644)
	m.WriteFile("root/a/f2.txt", []byte("y"), 0o644)

	entries, err := m.ReadDir("root")
	if err != nil {
		t.Fatal(err)
	}

	names := map[string]bool{}
	for _, e := range entries {
		names[e.Name()] = e.IsDir()
	}

	expected := map[string]bool{"a": true, "b": true, "f1.txt": false}
	for k, v := range expected {
		isDir, ok := names[k]
		if !ok || isDir != v {
			t.Fatalf("expected %s=%v, got %v", k, v, isDir)
		}
	}
	if len(names) != len(expected) {
		t.Fatalf("unexpected entries: %v", names)
	}

	if _, err := m.ReadDir("missing"); !m.IsNotExist(err) {
		t.Fatal("expected not-exist error")
	}
}

func TestMemoryFS_CreateTempFile(t *testing.T) {
	m := fs.NewMemoryFS()
	m.MkdirAll("tmp", 0o755)

	wc, name, err := m.CreateTempFile("tmp", "x-*")
	if err != nil {
		t.Fatal(err)
	}
	data := []byte("abc")
	if _, err := wc.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := wc.Close(); err != nil {
		t.Fatal(err)
	}

	read, err := m.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(read, data) {
		t.Fatalf("expected %q, got %q", data, read)
	}

	_, other, _ := m.CreateTempFile("tmp", "x-*")
	if other == name {
		t.Fatal("temp names must be unique")
	}
}

func TestMemoryFS_StatAndPathNormalization(t *testing.T) {
	m := fs.NewMemoryFS()
	m.MkdirAll("a/b", 0o755)
	m.WriteFile("a/b/f", []byte("xy"), 0o644)

	info, err := m.Stat("a/./b/../b/f")
	if err != nil || info.IsDir() || info.Size() != 2 {
		t.Fatalf("unexpected file info: %v %v", info, err)
	}
	if !info.Mode().IsRegular() {
		t.Fatal("file mode should be regular")
	}

	dir, err := m.Stat("a/b")
	if err != nil || !dir.IsDir() || !dir.Mode().IsDir() {
		t.Fatal("expected dir info")
	}
	if _, err := m.Stat("missing"); !m.IsNotExist(err) {
		t.Fatal("expected not-exist error")
	}
}

func TestMemoryFS_FileDirectoryClash(t *testing.T) {
	m := fs.NewMemoryFS()
	if err := m.MkdirAll("/w/d", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := m.WriteFile("/w/a", []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		run  func() error
	}{
		{"mkdir over file", func() error { return m.MkdirAll("/w/a", 0o755) }},
		{"mkdir below file", func() error { return m.MkdirAll("/w/a/b", 0o755) }},
		{"write below file", func() error { return m.WriteFile("/w/a/b", []byte("y"), 0o644) }},
		{"write over dir", func() error { return m.WriteFile("/w/d", []byte("y"), 0o644) }},
		{"rename onto dir", func() error { return m.Rename("/w/a", "/w/d") }},
	}
	for _, tc := range cases {
		if err := tc.run(); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}

	if !m.IsDir("/w/d") || m.IsDir("/w/a") {
		t.Fatal("failed operations must leave the tree unchanged")
	}
	if data, err := m.ReadFile("/w/a"); err != nil || string(data) != "x" {
		t.Fatalf("file changed: %q (%v)", data, err)
	}
}
