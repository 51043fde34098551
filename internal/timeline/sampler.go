package timeline

import (
	"errors"
	"path"
	"sort"
	"time"

	"github.com/masmgr/locktrail-go/internal/git"
	"github.com/masmgr/locktrail-go/internal/lockfile"
)

// Sample is the library version observed at one qualifying commit.
type Sample struct {
	Version lockfile.Version
	When    time.Time
	Commit  git.CommitInfo
}

// Result holds the samples of one walk, newest first, and the commits that
// were dropped.
type Result struct {
	Samples []Sample
	Skipped []*SampleError
}

// Sampler extracts a library's version from the lock file at each commit.
type Sampler struct {
	reader  git.RepositoryReader
	library string
}

// NewSampler creates a sampler for library over the reader's lock file.
func NewSampler(reader git.RepositoryReader, library string) *Sampler {
	return &Sampler{reader: reader, library: library}
}

// Sample reads the lock file as of c and extracts the library version.
// Failures confined to this commit are returned as a *SampleError; a commit
// that cannot be resolved is returned as is.
func (s *Sampler) Sample(c git.CommitInfo) (Sample, error) {
	content, err := s.reader.FileContent(c.SHA)
	if errors.Is(err, git.ErrCommitUnresolved) {
		return Sample{}, err
	}
	if err != nil {
		return Sample{}, newSampleError(c, err)
	}

	format, err := lockfile.ForFile(path.Base(s.reader.Path()))
	if err != nil {
		return Sample{}, newSampleError(c, err)
	}

	version, err := format.ExtractVersion(content, s.library)
	if err != nil {
		return Sample{}, newSampleError(c, err)
	}

	return Sample{Version: version, When: c.When, Commit: c}, nil
}

// Collect samples every qualifying commit. Per-commit failures are recorded
// in Result.Skipped; history walk errors and unresolvable commits are returned.
// Samples come back newest first by commit time.
func (s *Sampler) Collect() (*Result, error) {
	result := &Result{}

	err := s.reader.ForEachLockCommit(func(c git.CommitInfo) error {
		sample, err := s.Sample(c)
		if err != nil {
			var sampleErr *SampleError
			if !errors.As(err, &sampleErr) {
				return err
			}
			result.Skipped = append(result.Skipped, sampleErr)
			return nil
		}
		result.Samples = append(result.Samples, sample)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortNewestFirst(result.Samples)
	return result, nil
}

// sortNewestFirst orders samples by time, newest first. Equal times keep
// walk order.
func sortNewestFirst(samples []Sample) {
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].When.After(samples[j].When)
	})
}
