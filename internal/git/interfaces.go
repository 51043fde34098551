package git

// RepositoryReader defines the interface for reading lock file history.
// This abstraction allows for easier testing and potential alternative implementations.
type RepositoryReader interface {
	// Path returns the repository-relative lock file path.
	Path() string
	// ForEachLockCommit calls fn for every commit that changed the lock file,
	// newest first. An error from fn stops the walk and is returned.
	ForEachLockCommit(fn func(CommitInfo) error) error
	// FileContent returns the lock file text as of the given commit.
	FileContent(sha string) (string, error)
}

// Compile-time interface conformance check.
var _ RepositoryReader = (*HistoryReader)(nil)
