package git

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

var (
	// ErrFileNotFound is returned when the lock file does not exist in a commit's tree.
	ErrFileNotFound = errors.New("file not found in commit")
	// ErrBinaryContent is returned when the lock file blob is not text.
	ErrBinaryContent = errors.New("file content is not text")
	// ErrCommitUnresolved is returned when a commit object cannot be loaded.
	ErrCommitUnresolved = errors.New("commit cannot be resolved")
)

// HistoryReader reads lock file history from a Git repository.
type HistoryReader struct {
	repo *git.Repository
	opts ReadOptions
	path string
}

// NewHistoryReader opens the repository containing opts.RepoPath and resolves
// opts.Path relative to its root.
func NewHistoryReader(opts ReadOptions) (*HistoryReader, error) {
	repo, err := git.PlainOpenWithOptions(opts.RepoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, err
	}

	path, err := repoRelativePath(repo, opts.Path)
	if err != nil {
		return nil, err
	}

	return &HistoryReader{repo: repo, opts: opts, path: path}, nil
}

// Path returns the repository-relative lock file path.
func (r *HistoryReader) Path() string {
	return r.path
}

// LockCommits returns an iterator over commits that changed the lock file,
// ordered by commit time, newest first.
func (r *HistoryReader) LockCommits() (*LockCommitIter, error) {
	from, err := r.startCommit()
	if err != nil {
		return nil, err
	}

	cIter, err := r.repo.Log(&git.LogOptions{
		From:  from,
		Order: git.LogOrderCommitterTime,
	})
	if err != nil {
		return nil, fmt.Errorf("walk history: %w", err)
	}

	return &LockCommitIter{commits: cIter, path: r.path}, nil
}

// ForEachLockCommit calls fn for each commit that changed the lock file.
func (r *HistoryReader) ForEachLockCommit(fn func(CommitInfo) error) error {
	iter, err := r.LockCommits()
	if err != nil {
		return err
	}
	return iter.ForEach(func(c *object.Commit) error {
		return fn(NewCommitInfo(c))
	})
}

// FileContent returns the lock file text as of the commit identified by sha.
func (r *HistoryReader) FileContent(sha string) (string, error) {
	c, err := r.repo.CommitObject(plumbing.NewHash(sha))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrCommitUnresolved, sha, err)
	}
	return fileContent(c, r.path)
}

// FindFiles lists the files in the start commit's tree matching any of the
// given glob patterns.
func (r *HistoryReader) FindFiles(patterns []string) ([]string, error) {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid glob pattern %q", pattern)
		}
	}

	from, err := r.startCommit()
	if err != nil {
		return nil, err
	}
	c, err := r.repo.CommitObject(from)
	if err != nil {
		return nil, fmt.Errorf("load commit %s: %w", from, err)
	}
	tree, err := c.Tree()
	if err != nil {
		return nil, fmt.Errorf("load tree of %s: %w", from, err)
	}

	var files []string
	err = tree.Files().ForEach(func(f *object.File) error {
		for _, pattern := range patterns {
			if doublestar.MatchUnvalidated(pattern, f.Name) {
				files = append(files, f.Name)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// startCommit resolves the configured start revision, or HEAD.
func (r *HistoryReader) startCommit() (plumbing.Hash, error) {
	rev := strings.TrimSpace(r.opts.Branch)
	if rev == "" || strings.EqualFold(rev, "HEAD") {
		ref, err := r.repo.Head()
		if err != nil {
			return plumbing.ZeroHash, fmt.Errorf("resolve HEAD: %w", err)
		}
		return ref.Hash(), nil
	}

	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("resolve revision %q: %w", rev, err)
	}
	return *hash, nil
}

// LockCommitIter yields the commits of an underlying walk that changed a
// single path relative to their first parent. Root commits are always yielded.
type LockCommitIter struct {
	commits object.CommitIter
	path    string
}

// Next returns the next qualifying commit, or io.EOF when the walk is done.
func (it *LockCommitIter) Next() (*object.Commit, error) {
	for {
		c, err := it.commits.Next()
		if err != nil {
			return nil, err
		}

		if c.NumParents() == 0 {
			return c, nil
		}

		changes, err := FirstParentChanges(c, it.path)
		if err != nil {
			return nil, err
		}
		if len(changes) > 0 {
			return c, nil
		}
	}
}

// ForEach calls cb for each qualifying commit. The iterator is closed afterwards.
func (it *LockCommitIter) ForEach(cb func(*object.Commit) error) error {
	defer it.Close()
	for {
		c, err := it.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := cb(c); err != nil {
			if err == storer.ErrStop {
				return nil
			}
			return err
		}
	}
}

func (it *LockCommitIter) Close() {
	it.commits.Close()
}

var _ object.CommitIter = (*LockCommitIter)(nil)

// FirstParentChanges diffs c against its first parent, restricted to path.
// Additional parents of merge commits are ignored.
func FirstParentChanges(c *object.Commit, path string) ([]PathChange, error) {
	tree, err := c.Tree()
	if err != nil {
		return nil, fmt.Errorf("load tree of %s: %w", c.Hash, err)
	}

	parent, err := c.Parent(0)
	if err != nil {
		return nil, fmt.Errorf("load first parent of %s: %w", c.Hash, err)
	}
	parentTree, err := parent.Tree()
	if err != nil {
		return nil, fmt.Errorf("load tree of %s: %w", parent.Hash, err)
	}

	changes, err := diffPath(parentTree, tree, path)
	if err != nil {
		return nil, fmt.Errorf("diff %s at %s: %w", c.Hash, path, err)
	}
	return changes, nil
}

// diffPath compares the entry at path in two trees.
func diffPath(from, to *object.Tree, path string) ([]PathChange, error) {
	fromEntry, err := findEntry(from, path)
	if err != nil {
		return nil, err
	}
	toEntry, err := findEntry(to, path)
	if err != nil {
		return nil, err
	}

	switch {
	case fromEntry == nil && toEntry == nil:
		return nil, nil
	case fromEntry == nil:
		return []PathChange{{Path: path, Kind: ChangeKindAdded}}, nil
	case toEntry == nil:
		return []PathChange{{Path: path, Kind: ChangeKindDeleted}}, nil
	case fromEntry.Hash != toEntry.Hash || fromEntry.Mode != toEntry.Mode:
		return []PathChange{{Path: path, Kind: ChangeKindModified}}, nil
	default:
		return nil, nil
	}
}

// findEntry returns nil when path does not exist in tree.
func findEntry(tree *object.Tree, path string) (*object.TreeEntry, error) {
	entry, err := tree.FindEntry(path)
	if errors.Is(err, object.ErrEntryNotFound) || errors.Is(err, object.ErrDirectoryNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func fileContent(c *object.Commit, path string) (string, error) {
	f, err := c.File(path)
	if errors.Is(err, object.ErrFileNotFound) {
		return "", fmt.Errorf("%w: %s at %s", ErrFileNotFound, path, c.Hash)
	}
	if err != nil {
		return "", fmt.Errorf("read %s at %s: %w", path, c.Hash, err)
	}

	binary, err := f.IsBinary()
	if err != nil {
		return "", fmt.Errorf("read %s at %s: %w", path, c.Hash, err)
	}
	if binary {
		return "", fmt.Errorf("%w: %s at %s", ErrBinaryContent, path, c.Hash)
	}

	content, err := f.Contents()
	if err != nil {
		return "", fmt.Errorf("read %s at %s: %w", path, c.Hash, err)
	}
	if !utf8.ValidString(content) {
		return "", fmt.Errorf("%w: %s at %s", ErrBinaryContent, path, c.Hash)
	}
	return content, nil
}

// repoRelativePath converts p to a slash-separated path relative to the
// repository root. Absolute paths must lie inside the worktree.
func repoRelativePath(repo *git.Repository, p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", errors.New("empty lock file path")
	}

	if filepath.IsAbs(p) {
		wt, err := repo.Worktree()
		if err != nil {
			return "", fmt.Errorf("absolute path %q needs a worktree: %w", p, err)
		}
		rel, err := filepath.Rel(wt.Filesystem.Root(), p)
		if err != nil {
			return "", fmt.Errorf("path %q: %w", p, err)
		}
		p = rel
	}

	p = filepath.ToSlash(filepath.Clean(p))
	if p == "." || p == ".." || strings.HasPrefix(p, "../") {
		return "", fmt.Errorf("path %q is outside the repository", p)
	}
	return p, nil
}
