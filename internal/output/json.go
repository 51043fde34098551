package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// JSONTimelineWriter writes timeline reports as JSON.
type JSONTimelineWriter struct{}

// JSONTimelineReport is the JSON output structure for a timeline.
type JSONTimelineReport struct {
	RepoPath    string                `json:"repo"`
	Branch      string                `json:"branch,omitempty"`
	LockFile    string                `json:"lockFile"`
	Library     string                `json:"library"`
	GeneratedAt string                `json:"generatedAt"`
	SampleCount int                   `json:"sampleCount"`
	Entries     []JSONTimelineEntry   `json:"entries"`
	Skipped     []JSONSkippedRevision `json:"skipped"`
}

// JSONTimelineEntry is one version change. Version is null when the library is absent.
type JSONTimelineEntry struct {
	Version *string `json:"version"`
	Date    string  `json:"date"`
	Commit  string  `json:"commit"`
	Message string  `json:"message"`
}

// JSONSkippedRevision is a commit that produced no sample.
type JSONSkippedRevision struct {
	Commit string `json:"commit"`
	Date   string `json:"date"`
	Reason string `json:"reason"`
	Error  string `json:"error"`
}

// Write outputs the timeline report as JSON.
func (w *JSONTimelineWriter) Write(report *TimelineReport, options OutputOptions) error {
	tl := report.Timeline

	entries := make([]JSONTimelineEntry, len(tl.Entries))
	for i, e := range tl.Entries {
		entries[i] = JSONTimelineEntry{
			Version: versionValue(e.Version),
			Date:    formatTime(e.When),
			Commit:  e.Commit.SHA,
			Message: e.Commit.Message,
		}
	}

	skipped := make([]JSONSkippedRevision, len(tl.Skipped))
	for i, s := range tl.Skipped {
		skipped[i] = JSONSkippedRevision{
			Commit: s.Commit.SHA,
			Date:   formatTime(s.Commit.When),
			Reason: string(s.Reason),
			Error:  s.Err.Error(),
		}
	}

	jsonReport := JSONTimelineReport{
		RepoPath:    report.RepoPath,
		Branch:      report.Branch,
		LockFile:    tl.LockFile,
		Library:     tl.Library,
		GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
		SampleCount: tl.SampleCount,
		Entries:     entries,
		Skipped:     skipped,
	}

	return writeJSON(jsonReport, options.OutputPath)
}

// JSONLockFileWriter writes lock file listings as JSON.
type JSONLockFileWriter struct{}

// JSONLockFileReport is the JSON output structure for a lock file listing.
type JSONLockFileReport struct {
	RepoPath string             `json:"repo"`
	Branch   string             `json:"branch,omitempty"`
	Files    []JSONLockFileItem `json:"files"`
}

// JSONLockFileItem is one lock file. Format is null when unsupported.
type JSONLockFileItem struct {
	Path   string  `json:"path"`
	Format *string `json:"format"`
}

// Write outputs the lock file listing as JSON.
func (w *JSONLockFileWriter) Write(report *LockFileReport, options OutputOptions) error {
	files := make([]JSONLockFileItem, len(report.Files))
	for i, f := range report.Files {
		item := JSONLockFileItem{Path: f.Path}
		if f.Format != "" {
			format := f.Format
			item.Format = &format
		}
		files[i] = item
	}

	return writeJSON(JSONLockFileReport{
		RepoPath: report.RepoPath,
		Branch:   report.Branch,
		Files:    files,
	}, options.OutputPath)
}

func writeJSON(data interface{}, outputPath string) error {
	encoder := json.NewEncoder(os.Stdout)
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer file.Close()
		encoder = json.NewEncoder(file)
	}

	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
