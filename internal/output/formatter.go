package output

import (
	"time"

	"github.com/masmgr/locktrail-go/internal/timeline"
)

// Compile-time interface conformance checks.
// These ensure that all writer types correctly implement their respective interfaces.
var (
	// TimelineReportWriter implementations
	_ TimelineReportWriter = (*ConsoleTimelineWriter)(nil)
	_ TimelineReportWriter = (*JSONTimelineWriter)(nil)
	_ TimelineReportWriter = (*CSVTimelineWriter)(nil)
	_ TimelineReportWriter = (*MarkdownTimelineWriter)(nil)
	_ TimelineReportWriter = (*CITimelineWriter)(nil)

	// LockFileReportWriter implementations
	_ LockFileReportWriter = (*ConsoleLockFileWriter)(nil)
	_ LockFileReportWriter = (*JSONLockFileWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
	FormatCI       OutputFormat = "ci"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	OutputPath string
	TimeLayout string // layout for console and markdown timestamps
}

// TimelineReport holds a library's version timeline.
type TimelineReport struct {
	RepoPath    string
	Branch      string
	GeneratedAt time.Time
	Timeline    *timeline.Timeline
}

// LockFileItem is one lock file found in a tree.
type LockFileItem struct {
	Path   string
	Format string // empty when the name maps to no format
}

// LockFileReport lists the lock files of a revision.
type LockFileReport struct {
	RepoPath string
	Branch   string
	Files    []LockFileItem
}

// TimelineReportWriter writes timeline reports.
type TimelineReportWriter interface {
	Write(report *TimelineReport, options OutputOptions) error
}

// LockFileReportWriter writes lock file listings.
type LockFileReportWriter interface {
	Write(report *LockFileReport, options OutputOptions) error
}

// NewTimelineReportWriter creates a report writer for the specified format.
func NewTimelineReportWriter(format OutputFormat) TimelineReportWriter {
	switch format {
	case FormatJSON:
		return &JSONTimelineWriter{}
	case FormatCSV:
		return &CSVTimelineWriter{}
	case FormatMarkdown:
		return &MarkdownTimelineWriter{}
	case FormatCI:
		return &CITimelineWriter{}
	default:
		return &ConsoleTimelineWriter{}
	}
}

// NewLockFileReportWriter creates a lock file listing writer for the specified format.
func NewLockFileReportWriter(format OutputFormat) LockFileReportWriter {
	switch format {
	case FormatJSON:
		return &JSONLockFileWriter{}
	default:
		return &ConsoleLockFileWriter{}
	}
}
