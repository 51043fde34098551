package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

type testRepo struct {
	t    *testing.T
	dir  string
	repo *gogit.Repository
	wt   *gogit.Worktree
	base time.Time
}

func newTestRepo(t *testing.T) *testRepo {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}

	return &testRepo{
		t:    t,
		dir:  dir,
		repo: repo,
		wt:   wt,
		base: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (r *testRepo) write(rel, content string) {
	r.t.Helper()
	full := filepath.Join(r.dir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		r.t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		r.t.Fatalf("WriteFile: %v", err)
	}
	if _, err := r.wt.Add(rel); err != nil {
		r.t.Fatalf("Add: %v", err)
	}
}

func (r *testRepo) remove(rel string) {
	r.t.Helper()
	if _, err := r.wt.Remove(rel); err != nil {
		r.t.Fatalf("Remove: %v", err)
	}
}

// commit records a commit dated hour hours after the repository's base time.
func (r *testRepo) commit(msg string, hour int, parents ...plumbing.Hash) plumbing.Hash {
	r.t.Helper()
	sig := &object.Signature{
		Name:  "Test",
		Email: "test@example.com",
		When:  r.base.Add(time.Duration(hour) * time.Hour),
	}
	hash, err := r.wt.Commit(msg, &gogit.CommitOptions{
		Author:    sig,
		Committer: sig,
		Parents:   parents,
	})
	if err != nil {
		r.t.Fatalf("Commit(%q): %v", msg, err)
	}
	return hash
}

func (r *testRepo) checkout(branch plumbing.ReferenceName, create bool) {
	r.t.Helper()
	if err := r.wt.Checkout(&gogit.CheckoutOptions{Branch: branch, Create: create}); err != nil {
		r.t.Fatalf("Checkout(%s): %v", branch, err)
	}
}

func (r *testRepo) reader(opts ReadOptions) *HistoryReader {
	r.t.Helper()
	if opts.RepoPath == "" {
		opts.RepoPath = r.dir
	}
	reader, err := NewHistoryReader(opts)
	if err != nil {
		r.t.Fatalf("NewHistoryReader: %v", err)
	}
	return reader
}

func collectMessages(t *testing.T, reader *HistoryReader) []string {
	t.Helper()
	var messages []string
	err := reader.ForEachLockCommit(func(c CommitInfo) error {
		messages = append(messages, c.Message)
		return nil
	})
	if err != nil {
		t.Fatalf("ForEachLockCommit: %v", err)
	}
	return messages
}

func assertMessages(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("messages = %q, expected %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("messages = %q, expected %q", got, want)
		}
	}
}
