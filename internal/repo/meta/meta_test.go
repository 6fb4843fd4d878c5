package meta_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/repo/meta"
)

// helpers
func newTestMeta(t *testing.T) *meta.MetaContext {
	t.Helper()
	cfg := config.NewRepoConfig("/work")
	m := fs.NewMemoryFS()
	if err := m.MkdirAll(cfg.WorkingTreeDir, 0o755); err != nil {
		t.Fatal(err)
	}
	mc, err := meta.NewMeta(cfg, m)
	if err != nil {
		t.Fatal(err)
	}
	if err := mc.CreateMetaStructure(config.DefaultBranch, meta.InitialCommit()); err != nil {
		t.Fatalf("CreateMetaStructure failed: %v", err)
	}
	return mc
}

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// Init
func TestCreateMetaStructure(t *testing.T) {
	mc := newTestMeta(t)

	if !meta.IsMetaExists(mc.Config, mc.FS) {
		t.Fatal("expected repository to exist")
	}

	head, err := mc.GetHead()
	if err != nil {
		t.Fatalf("GetHead failed: %v", err)
	}
	initial := meta.InitialCommit()
	if head.Branch != config.DefaultBranch || head.CommitID != initial.ID {
		t.Errorf("unexpected HEAD: %+v", head)
	}

	data, _ := mc.FS.ReadFile(mc.Config.HeadFile())
	if !strings.HasPrefix(string(data), "ref: branches/master\n") {
		t.Errorf("unexpected HEAD content: %q", data)
	}

	b, err := mc.GetBranch(config.DefaultBranch)
	if err != nil || b.Commit != initial.ID {
		t.Fatalf("default branch should point at the initial commit: %+v %v", b, err)
	}
}

// Identity
func TestCommitIdentity(t *testing.T) {
	a := meta.NewCommit("msg", t0, map[string]string{"a.txt": "k1", "b.txt": "k2"}, "p", "")
	b := meta.NewCommit("msg", t0, map[string]string{"b.txt": "k2", "a.txt": "k1"}, "p", "")

	if a.ID != b.ID {
		t.Fatal("identity must not depend on map order")
	}
	if len(a.ID) != 64 {
		t.Fatalf("expected hex SHA-256 id, got %q", a.ID)
	}
	if a.ComputeID() != a.ID {
		t.Fatal("recomputed identity must equal the stored id")
	}

	variants := []*meta.Commit{
		meta.NewCommit("other", t0, a.Files, "p", ""),
		meta.NewCommit("msg", t0.Add(time.Second), a.Files, "p", ""),
		meta.NewCommit("msg", t0, map[string]string{"a.txt": "k1"}, "p", ""),
		meta.NewCommit("msg", t0, a.Files, "q", ""),
		meta.NewCommit("msg", t0, a.Files, "p", "s"),
	}
	for i, v := range variants {
		if v.ID == a.ID {
			t.Errorf("variant %d should have a different identity", i)
		}
	}

	if meta.InitialCommit().ID != meta.InitialCommit().ID {
		t.Fatal("initial commit must be identical across repositories")
	}
	if ts := meta.InitialCommit().Timestamp; ts != "Thu Jan 01 00:00:00 1970 +0000" {
		t.Fatalf("unexpected initial timestamp %q", ts)
	}
}

func TestCommitRoundTrip(t *testing.T) {
	mc := newTestMeta(t)
	initial := meta.InitialCommit()

	c := meta.NewCommit("add a", t0, map[string]string{"a.txt": "k1"}, initial.ID, "")
	if err := mc.CreateCommit(c); err != nil {
		t.Fatal(err)
	}

	got, err := mc.GetCommit(c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.ComputeID() != c.ID || got.Files["a.txt"] != "k1" || got.Parent != initial.ID {
		t.Fatalf("unexpected commit %+v", got)
	}

	ri, err := mc.GetCommit(initial.ID)
	if err != nil || ri.Files == nil || len(ri.Files) != 0 {
		t.Fatalf("initial commit should have an empty table: %+v %v", ri, err)
	}

	if _, err := mc.GetCommit("nonexistent"); !errors.Is(err, errs.ErrCommitNotFound) {
		t.Fatalf("expected CommitNotFound, got %v", err)
	}
}

func TestResolveCommitID(t *testing.T) {
	mc := newTestMeta(t)
	initial := meta.InitialCommit()

	c := meta.NewCommit("second", t0, nil, initial.ID, "")
	mc.CreateCommit(c)

	id, err := mc.ResolveCommitID(c.ID[:8])
	if err != nil || id != c.ID {
		t.Fatalf("expected %s, got %s (%v)", c.ID, id, err)
	}
	if id, _ := mc.ResolveCommitID(c.ID); id != c.ID {
		t.Fatal("exact id should resolve")
	}

	// find two ids sharing a first character for an ambiguous prefix
	for i := 0; ; i++ {
		x := meta.NewCommit("x", t0.Add(time.Duration(i)*time.Second), nil, initial.ID, "")
		if x.ID[0] == c.ID[0] || x.ID[0] == initial.ID[0] {
			mc.CreateCommit(x)
			if _, err := mc.ResolveCommitID(x.ID[:1]); !errors.Is(err, errs.ErrCommitNotFound) {
				t.Fatalf("ambiguous prefix should be CommitNotFound, got %v", err)
			}
			break
		}
	}

	for _, bad := range []string{"", "zzzz", "../" + c.ID[:4], c.ID[:6] + "/x"} {
		if _, err := mc.ResolveCommitID(bad); !errors.Is(err, errs.ErrCommitNotFound) {
			t.Errorf("prefix %q: expected CommitNotFound, got %v", bad, err)
		}
	}
}

func TestFindByMessage(t *testing.T) {
	mc := newTestMeta(t)
	initial := meta.InitialCommit()

	a := meta.NewCommit("same", t0, nil, initial.ID, "")
	b := meta.NewCommit("same", t0.Add(time.Minute), nil, a.ID, "")
	mc.CreateCommit(a)
	mc.CreateCommit(b)

	ids, err := mc.FindByMessage("same")
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[0] > ids[1] {
		t.Fatalf("expected two sorted ids, got %v", ids)
	}

	ids, _ = mc.FindByMessage(meta.InitialMessage)
	if len(ids) != 1 || ids[0] != initial.ID {
		t.Fatalf("expected the initial commit, got %v", ids)
	}
}

func TestGlobalLogNewestFirst(t *testing.T) {
	mc := newTestMeta(t)
	initial := meta.InitialCommit()

	c := meta.NewCommit("second", t0, nil, initial.ID, "")
	mc.CreateCommit(c)
	mc.CreateCommit(c) // duplicate write is a no-op

	log, err := mc.ReadGlobalLog()
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(log, "===\n") != 2 {
		t.Fatalf("expected two entries, got:\n%s", log)
	}
	if strings.Index(log, c.ID) > strings.Index(log, initial.ID) {
		t.Fatal("newest entry must come first")
	}
}

func TestFormatLogEntry(t *testing.T) {
	plain := meta.NewCommit("msg", t0, nil, "", "")
	want := "===\ncommit " + plain.ID + "\nDate: Fri Mar 01 12:00:00 2024 +0000\nmsg\n"
	if got := meta.FormatLogEntry(plain); got != want {
		t.Fatalf("expected\n%q\ngot\n%q", want, got)
	}

	merge := meta.NewCommit("Merged b into a.", t0, nil, "1234567890", "abcdefghij")
	if !strings.Contains(meta.FormatLogEntry(merge), "Merge: 1234567 abcdefg\n") {
		t.Fatalf("merge entry missing parents: %q", meta.FormatLogEntry(merge))
	}
}

func TestWalkFirstParent(t *testing.T) {
	mc := newTestMeta(t)
	initial := meta.InitialCommit()

	a := meta.NewCommit("a", t0, nil, initial.ID, "")
	side := meta.NewCommit("side", t0, nil, initial.ID, "")
	m := meta.NewCommit("merge", t0.Add(time.Hour), nil, a.ID, side.ID)
	for _, c := range []*meta.Commit{a, side, m} {
		mc.CreateCommit(c)
	}

	var got []string
	for c, err := range mc.Walk(m.ID) {
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, c.Message)
	}
	want := []string{"merge", "a", meta.InitialMessage}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

// Branches
func TestBranchLifecycle(t *testing.T) {
	mc := newTestMeta(t)
	initial := meta.InitialCommit()

	b, err := mc.CreateBranch("feature", config.DefaultBranch, initial.ID)
	if err != nil {
		t.Fatalf("CreateBranch failed: %v", err)
	}
	if b.Upstream != config.DefaultBranch {
		t.Errorf("expected upstream %q, got %q", config.DefaultBranch, b.Upstream)
	}
	if _, err := mc.CreateBranch("feature", "", initial.ID); !errors.Is(err, errs.ErrBranchExists) {
		t.Fatalf("expected BranchExists, got %v", err)
	}

	branches, err := mc.ListBranches()
	if err != nil {
		t.Fatalf("ListBranches failed: %v", err)
	}
	if len(branches) != 2 || branches[0].Name != "feature" || branches[1].Name != "master" {
		t.Fatalf("unexpected branches %+v", branches)
	}

	if err := mc.DeleteBranch("feature"); err != nil {
		t.Fatal(err)
	}
	if mc.BranchExists("feature") {
		t.Fatal("branch should be deleted")
	}
	if err := mc.DeleteBranch("feature"); !errors.Is(err, errs.ErrBranchNotFound) {
		t.Fatalf("expected BranchNotFound, got %v", err)
	}
}

func TestValidateBranchName(t *testing.T) {
	cases := []struct {
		name string
		ok   bool
	}{
		{"feature", true},
		{"fix-1.2", true},
		{"", false},
		{"  ", false},
		{"HEAD", false},
		{"a/b", false},
		{`a\b`, false},
		{"..", false},
	}
	for _, tc := range cases {
		err := meta.ValidateBranchName(tc.name)
		if (err == nil) != tc.ok {
			t.Errorf("%q: expected ok=%v, got %v", tc.name, tc.ok, err)
		}
		if err != nil && !errors.Is(err, errs.ErrInvalidBranchName) {
			t.Errorf("%q: expected InvalidBranchName, got %v", tc.name, err)
		}
	}
}

// HEAD
func TestMoveBranchUpdatesHeadCache(t *testing.T) {
	mc := newTestMeta(t)
	initial := meta.InitialCommit()
	c := meta.NewCommit("next", t0, nil, initial.ID, "")
	mc.CreateCommit(c)
	mc.CreateBranch("other", "", initial.ID)

	if err := mc.MoveBranch(config.DefaultBranch, c.ID); err != nil {
		t.Fatal(err)
	}
	head, _ := mc.GetHead()
	if head.CommitID != c.ID {
		t.Fatalf("HEAD cache should follow its branch, got %+v", head)
	}

	if err := mc.MoveBranch("other", c.ID); err != nil {
		t.Fatal(err)
	}
	head, _ = mc.GetHead()
	if head.Branch != config.DefaultBranch {
		t.Fatal("moving another branch must not change HEAD")
	}
}

func TestHeadErrors(t *testing.T) {
	mc := newTestMeta(t)

	mc.FS.WriteFile(mc.Config.HeadFile(), []byte("garbage"), 0o644)
	if _, err := mc.GetHead(); err == nil {
		t.Error("expected error for invalid HEAD")
	}

	mc.FS.Remove(mc.Config.HeadFile())
	if _, err := mc.GetHead(); err == nil {
		t.Error("expected error for missing HEAD")
	}
}
