package git

import (
	"strings"
	"time"

	"github.com/go-git/go-git/v5/plumbing/object"
)

// CommitInfo represents minimal information about a Git commit.
type CommitInfo struct {
	SHA     string
	When    time.Time // committer time, the clock the walk is ordered by
	Author  AuthorInfo
	Message string
}

// AuthorInfo represents commit author information.
type AuthorInfo struct {
	Name  string
	Email string
}

// ShortSHA returns the abbreviated commit hash.
func (c CommitInfo) ShortSHA() string {
	if len(c.SHA) > 7 {
		return c.SHA[:7]
	}
	return c.SHA
}

// NewCommitInfo extracts CommitInfo from a go-git commit.
func NewCommitInfo(c *object.Commit) CommitInfo {
	// Extract first line of commit message
	message := c.Message
	if idx := strings.IndexByte(message, '\n'); idx != -1 {
		message = message[:idx]
	}

	return CommitInfo{
		SHA:     c.Hash.String(),
		When:    c.Committer.When,
		Author:  AuthorInfo{Name: c.Author.Name, Email: c.Author.Email},
		Message: message,
	}
}

// PathChange is one change record of a path-scoped diff.
type PathChange struct {
	Path string
	Kind ChangeKind
}

// ChangeKind represents the type of change.
type ChangeKind int

const (
	ChangeKindAdded ChangeKind = iota
	ChangeKindModified
	ChangeKindDeleted
)

// String returns a string representation of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeKindAdded:
		return "added"
	case ChangeKindModified:
		return "modified"
	case ChangeKindDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// ReadOptions configures the history reader.
type ReadOptions struct {
	RepoPath string
	Branch   string // start revision; empty means HEAD
	Path     string // lock file path, absolute or repository-relative
}
