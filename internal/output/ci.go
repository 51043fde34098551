package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// CITimelineWriter writes timeline reports as NDJSON (one JSON object per line) for CI pipelines.
type CITimelineWriter struct{}

// CISummary is the first line of CI output, containing aggregate statistics.
type CISummary struct {
	Type           string  `json:"type"`
	Library        string  `json:"library"`
	LockFile       string  `json:"lockFile"`
	CurrentVersion *string `json:"currentVersion"`
	Changes        int     `json:"changes"`
	Samples        int     `json:"samples"`
	Skipped        int     `json:"skipped"`
}

// CIVersionEntry represents a single version change in CI output.
type CIVersionEntry struct {
	Type    string  `json:"type"`
	Version *string `json:"version"`
	Date    string  `json:"date"`
	Commit  string  `json:"commit"`
}

// CISkippedEntry represents a dropped revision in CI output.
type CISkippedEntry struct {
	Type   string `json:"type"`
	Commit string `json:"commit"`
	Reason string `json:"reason"`
}

// Write outputs the timeline report as NDJSON.
func (w *CITimelineWriter) Write(report *TimelineReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	tl := report.Timeline

	summary := CISummary{
		Type:     "summary",
		Library:  tl.Library,
		LockFile: tl.LockFile,
		Changes:  len(tl.Entries),
		Samples:  tl.SampleCount,
		Skipped:  len(tl.Skipped),
	}
	if n := len(tl.Entries); n > 0 {
		summary.CurrentVersion = versionValue(tl.Entries[n-1].Version)
	}
	if err := writeNDJSONLine(out, summary); err != nil {
		return err
	}

	for _, e := range tl.Entries {
		entry := CIVersionEntry{
			Type:    "version",
			Version: versionValue(e.Version),
			Date:    formatTime(e.When),
			Commit:  e.Commit.SHA,
		}
		if err := writeNDJSONLine(out, entry); err != nil {
			return err
		}
	}

	for _, s := range tl.Skipped {
		entry := CISkippedEntry{
			Type:   "skipped",
			Commit: s.Commit.SHA,
			Reason: string(s.Reason),
		}
		if err := writeNDJSONLine(out, entry); err != nil {
			return err
		}
	}

	return nil
}

func writeNDJSONLine(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal NDJSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
