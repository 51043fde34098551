package timeline

import (
	"errors"
	"fmt"

	"github.com/masmgr/locktrail-go/internal/git"
	"github.com/masmgr/locktrail-go/internal/lockfile"
)

// SkipReason classifies why a qualifying commit produced no sample.
type SkipReason string

const (
	SkipMissingFile   SkipReason = "missing-file"
	SkipBinary        SkipReason = "binary"
	SkipUnknownFormat SkipReason = "unknown-format"
	SkipParse         SkipReason = "parse"
	SkipRead          SkipReason = "read"
)

// SampleError is a per-commit failure. The sampler drops the commit and
// continues; it never aborts a run.
type SampleError struct {
	Commit git.CommitInfo
	Reason SkipReason
	Err    error
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("skip %s (%s): %v", e.Commit.ShortSHA(), e.Reason, e.Err)
}

func (e *SampleError) Unwrap() error {
	return e.Err
}

func newSampleError(c git.CommitInfo, err error) *SampleError {
	return &SampleError{Commit: c, Reason: classify(err), Err: err}
}

func classify(err error) SkipReason {
	var parseErr *lockfile.ParseError
	switch {
	case errors.Is(err, git.ErrFileNotFound):
		return SkipMissingFile
	case errors.Is(err, git.ErrBinaryContent):
		return SkipBinary
	case errors.Is(err, lockfile.ErrUnknownFormat):
		return SkipUnknownFormat
	case errors.As(err, &parseErr):
		return SkipParse
	default:
		return SkipRead
	}
}
