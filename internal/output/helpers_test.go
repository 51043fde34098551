package output

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/masmgr/locktrail-go/internal/git"
	"github.com/masmgr/locktrail-go/internal/lockfile"
	"github.com/masmgr/locktrail-go/internal/timeline"
)

var testTime = time.Date(2024, 2, 1, 8, 30, 0, 0, time.UTC)

func sampleReport() *TimelineReport {
	return &TimelineReport{
		RepoPath:    "/test/repo",
		Branch:      "main",
		GeneratedAt: testTime.Add(24 * time.Hour),
		Timeline: &timeline.Timeline{
			Library:     "acme/foo",
			LockFile:    "composer.lock",
			SampleCount: 4,
			Entries: []timeline.Entry{
				{
					Version: lockfile.Version{},
					When:    testTime,
					Commit:  git.CommitInfo{SHA: "1111111aaaaaaa", Message: "initial"},
				},
				{
					Version: lockfile.Pinned("1.0.0"),
					When:    testTime.Add(time.Hour),
					Commit:  git.CommitInfo{SHA: "2222222bbbbbbb", Message: "require acme/foo"},
				},
				{
					Version: lockfile.Pinned("2.0.0"),
					When:    testTime.Add(3 * time.Hour),
					Commit:  git.CommitInfo{SHA: "3333333ccccccc", Message: "bump acme/foo | major"},
				},
			},
			Skipped: []*timeline.SampleError{
				{
					Commit: git.CommitInfo{SHA: "4444444ddddddd", When: testTime.Add(2 * time.Hour)},
					Reason: timeline.SkipParse,
					Err:    errors.New("unexpected end of JSON input"),
				},
			},
		},
	}
}

func emptyReport() *TimelineReport {
	return &TimelineReport{
		RepoPath:    "/test/repo",
		GeneratedAt: testTime,
		Timeline:    &timeline.Timeline{Library: "acme/foo", LockFile: "composer.lock"},
	}
}

func readTestFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func writeReport(t *testing.T, w TimelineReportWriter, report *TimelineReport, name string) string {
	t.Helper()
	path := t.TempDir() + "/" + name
	if err := w.Write(report, OutputOptions{OutputPath: path}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := readTestFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	return string(data)
}
