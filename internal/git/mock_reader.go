package git

import "fmt"

// MockHistoryReader is a test double for HistoryReader.
// It allows tests to provide predefined commit data without needing a real Git repository.
type MockHistoryReader struct {
	LockPath string
	Commits  []CommitInfo      // newest first
	Contents map[string]string // keyed by SHA
	Errors   map[string]error  // FileContent errors keyed by SHA
	Error    error             // returned by ForEachLockCommit
}

// NewMockHistoryReader creates a new MockHistoryReader with the given data.
func NewMockHistoryReader(path string, commits []CommitInfo, contents map[string]string) *MockHistoryReader {
	return &MockHistoryReader{
		LockPath: path,
		Commits:  commits,
		Contents: contents,
		Errors:   make(map[string]error),
	}
}

func (m *MockHistoryReader) Path() string {
	return m.LockPath
}

// ForEachLockCommit replays the predefined commits or returns the predefined error.
func (m *MockHistoryReader) ForEachLockCommit(fn func(CommitInfo) error) error {
	if m.Error != nil {
		return m.Error
	}
	for _, c := range m.Commits {
		if err := fn(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *MockHistoryReader) FileContent(sha string) (string, error) {
	if err := m.Errors[sha]; err != nil {
		return "", err
	}
	content, ok := m.Contents[sha]
	if !ok {
		return "", fmt.Errorf("%w: %s at %s", ErrFileNotFound, m.LockPath, sha)
	}
	return content, nil
}

// Compile-time interface conformance check.
var _ RepositoryReader = (*MockHistoryReader)(nil)
