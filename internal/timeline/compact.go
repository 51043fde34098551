package timeline

import (
	"time"

	"github.com/masmgr/locktrail-go/internal/git"
	"github.com/masmgr/locktrail-go/internal/lockfile"
)

// Entry marks the start of a run of one version, oldest first.
type Entry struct {
	Version lockfile.Version
	When    time.Time
	Commit  git.CommitInfo
}

// Compact turns newest-first samples into version change entries in
// chronological order. Consecutive samples with the same version, including
// the absent version, collapse into the earliest one. samples is not modified.
func Compact(samples []Sample) []Entry {
	entries := make([]Entry, 0)

	var current lockfile.Version
	started := false
	for i := len(samples) - 1; i >= 0; i-- {
		s := samples[i]
		if started && s.Version == current {
			continue
		}
		entries = append(entries, Entry{Version: s.Version, When: s.When, Commit: s.Commit})
		current = s.Version
		started = true
	}

	return entries
}

// Timeline is the outcome of one run.
type Timeline struct {
	Library     string
	LockFile    string
	Entries     []Entry
	SampleCount int
	Skipped     []*SampleError
}

// Build walks the reader's lock file history and compacts the samples.
func Build(reader git.RepositoryReader, library string) (*Timeline, error) {
	result, err := NewSampler(reader, library).Collect()
	if err != nil {
		return nil, err
	}

	return &Timeline{
		Library:     library,
		LockFile:    reader.Path(),
		Entries:     Compact(result.Samples),
		SampleCount: len(result.Samples),
		Skipped:     result.Skipped,
	}, nil
}
