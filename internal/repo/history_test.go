package repo_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/keshon/gitlet/internal/errs"
)

func TestCommitErrors(t *testing.T) {
	r := newTestRepo(t)

	if _, err := r.Commit("nothing"); !errors.Is(err, errs.ErrNothingStaged) {
		t.Fatalf("expected NothingStaged, got %v", err)
	}

	write(t, r, "a.txt", "a")
	r.Add("a.txt")
	for _, msg := range []string{"", "   "} {
		if _, err := r.Commit(msg); !errors.Is(err, errs.ErrEmptyMessage) {
			t.Fatalf("message %q: expected EmptyMessage, got %v", msg, err)
		}
	}
}

func TestCommitTableDiffersAtStagedPaths(t *testing.T) {
	r := newTestRepo(t)
	commitFiles(t, r, "base", map[string]string{"keep.txt": "k", "mod.txt": "m1", "gone.txt": "g"})
	before, _ := r.LoadState()

	write(t, r, "mod.txt", "m2")
	r.Add("mod.txt")
	write(t, r, "new.txt", "n")
	r.Add("new.txt")
	if err := r.Remove("gone.txt"); err != nil {
		t.Fatal(err)
	}
	c, err := r.Commit("change")
	if err != nil {
		t.Fatal(err)
	}

	if c.Parent != before.Commit.ID || c.SecondParent != "" {
		t.Fatalf("unexpected parents %q %q", c.Parent, c.SecondParent)
	}
	if c.Files["keep.txt"] != before.Commit.Files["keep.txt"] {
		t.Error("unstaged path must keep its blob")
	}
	if c.Files["mod.txt"] == before.Commit.Files["mod.txt"] {
		t.Error("modified path must change")
	}
	if _, ok := c.Files["new.txt"]; !ok {
		t.Error("added path missing")
	}
	if _, ok := c.Files["gone.txt"]; ok {
		t.Error("removed path still tracked")
	}
	if len(c.Files) != 3 {
		t.Fatalf("unexpected table %v", c.Files)
	}

	ix, _ := r.Store.FileCtx.LoadIndex()
	if !ix.Empty() {
		t.Fatal("staging area must be empty after commit")
	}
	if headID(t, r) != c.ID {
		t.Fatal("branch must move to the new commit")
	}
	if err := r.CheckHead(); err != nil {
		t.Fatal(err)
	}
}

func TestLog(t *testing.T) {
	r := newTestRepo(t)
	first := commitFiles(t, r, "first", map[string]string{"a.txt": "1"})
	second := commitFiles(t, r, "second", map[string]string{"a.txt": "2"})

	var msgs []string
	for c, err := range r.Log() {
		if err != nil {
			t.Fatal(err)
		}
		msgs = append(msgs, c.Message)
	}
	if strings.Join(msgs, "|") != "second|first|initial commit" {
		t.Fatalf("unexpected log order %v", msgs)
	}

	out, err := r.RenderLog()
	if err != nil {
		t.Fatal(err)
	}
	if strings.Index(out, second) > strings.Index(out, first) {
		t.Fatal("newest commit must be first")
	}
	if !strings.HasPrefix(out, "===\ncommit "+second+"\nDate: ") {
		t.Fatalf("unexpected rendering:\n%s", out)
	}

	cached, _ := r.Meta.FS.ReadFile(r.Config.LogFile())
	if string(cached) != out {
		t.Fatal("log cache must hold the rendered log")
	}
}

func TestGlobalLogIncludesAllBranches(t *testing.T) {
	r := newTestRepo(t)
	branch(t, r, "other")
	onMaster := commitFiles(t, r, "on master", map[string]string{"a.txt": "1"})
	checkout(t, r, "other")
	onOther := commitFiles(t, r, "on other", map[string]string{"b.txt": "1"})

	out, err := r.GlobalLog()
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{onMaster, onOther} {
		if !strings.Contains(out, "commit "+id) {
			t.Errorf("global log misses %s", id)
		}
	}
	if strings.Index(out, onOther) > strings.Index(out, onMaster) {
		t.Fatal("global log must be newest first")
	}

	local, _ := r.RenderLog()
	if strings.Contains(local, onMaster) {
		t.Fatal("branch log must not include other branches")
	}
}
