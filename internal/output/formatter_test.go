package output

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestNewTimelineReportWriter(t *testing.T) {
	tests := []struct {
		name   string
		format OutputFormat
	}{
		{name: "Console", format: FormatConsole},
		{name: "JSON", format: FormatJSON},
		{name: "CSV", format: FormatCSV},
		{name: "Markdown", format: FormatMarkdown},
		{name: "CI", format: FormatCI},
		{name: "Unknown defaults to Console", format: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := NewTimelineReportWriter(tt.format)
			if writer == nil {
				t.Fatal("NewTimelineReportWriter returned nil")
			}

			switch tt.format {
			case FormatJSON:
				if _, ok := writer.(*JSONTimelineWriter); !ok {
					t.Errorf("Expected *JSONTimelineWriter for format %q", tt.format)
				}
			case FormatCSV:
				if _, ok := writer.(*CSVTimelineWriter); !ok {
					t.Errorf("Expected *CSVTimelineWriter for format %q", tt.format)
				}
			case FormatMarkdown:
				if _, ok := writer.(*MarkdownTimelineWriter); !ok {
					t.Errorf("Expected *MarkdownTimelineWriter for format %q", tt.format)
				}
			case FormatCI:
				if _, ok := writer.(*CITimelineWriter); !ok {
					t.Errorf("Expected *CITimelineWriter for format %q", tt.format)
				}
			default:
				if _, ok := writer.(*ConsoleTimelineWriter); !ok {
					t.Errorf("Expected *ConsoleTimelineWriter for format %q", tt.format)
				}
			}
		})
	}
}

func TestNewLockFileReportWriter(t *testing.T) {
	if _, ok := NewLockFileReportWriter(FormatJSON).(*JSONLockFileWriter); !ok {
		t.Error("Expected *JSONLockFileWriter for json")
	}
	if _, ok := NewLockFileReportWriter(FormatCSV).(*ConsoleLockFileWriter); !ok {
		t.Error("Expected *ConsoleLockFileWriter fallback for csv")
	}
}

func TestJSONTimelineWriter_Write(t *testing.T) {
	data := writeReport(t, &JSONTimelineWriter{}, sampleReport(), "timeline.json")

	var parsed JSONTimelineReport
	if err := json.Unmarshal([]byte(data), &parsed); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, data)
	}

	if parsed.Library != "acme/foo" || parsed.LockFile != "composer.lock" {
		t.Errorf("library/lockFile = %q/%q", parsed.Library, parsed.LockFile)
	}
	if len(parsed.Entries) != 3 {
		t.Fatalf("len(entries) = %d, expected 3", len(parsed.Entries))
	}
	if parsed.Entries[0].Version != nil {
		t.Errorf("entries[0].version = %v, expected null", *parsed.Entries[0].Version)
	}
	if parsed.Entries[2].Version == nil || *parsed.Entries[2].Version != "2.0.0" {
		t.Errorf("entries[2].version = %v, expected 2.0.0", parsed.Entries[2].Version)
	}
	if parsed.Entries[0].Date != "2024-02-01T08:30:00Z" {
		t.Errorf("entries[0].date = %q", parsed.Entries[0].Date)
	}
	if len(parsed.Skipped) != 1 || parsed.Skipped[0].Reason != "parse" {
		t.Errorf("skipped = %+v", parsed.Skipped)
	}
	if !strings.Contains(data, `"version": null`) {
		t.Errorf("expected explicit null version in output:\n%s", data)
	}
}

func TestJSONTimelineWriter_EmptyArrays(t *testing.T) {
	data := writeReport(t, &JSONTimelineWriter{}, emptyReport(), "empty.json")

	if !strings.Contains(data, `"entries": []`) {
		t.Errorf("expected empty entries array:\n%s", data)
	}
	if !strings.Contains(data, `"skipped": []`) {
		t.Errorf("expected empty skipped array:\n%s", data)
	}
}

func TestCSVTimelineWriter_Write(t *testing.T) {
	data := writeReport(t, &CSVTimelineWriter{}, sampleReport(), "timeline.csv")

	records, err := csv.NewReader(strings.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected 4 rows (header + 3), got %d", len(records))
	}
	if records[1][2] != "" || records[1][3] != "false" {
		t.Errorf("absent row = %v", records[1])
	}
	if records[2][2] != "1.0.0" || records[2][3] != "true" {
		t.Errorf("1.0.0 row = %v", records[2])
	}
}

func TestMarkdownTimelineWriter_Write(t *testing.T) {
	data := writeReport(t, &MarkdownTimelineWriter{}, sampleReport(), "timeline.md")

	for _, want := range []string{
		"# Version history of `acme/foo`",
		"| 1 | 2024-02-01 08:30:00 | _absent_ | `1111111` | initial |",
		"| 3 | 2024-02-01 11:30:00 | `2.0.0` | `3333333` | bump acme/foo \\| major |",
		"## Skipped revisions",
		"| `4444444` | 2024-02-01 10:30:00 | parse |",
	} {
		if !strings.Contains(data, want) {
			t.Errorf("markdown output missing %q:\n%s", want, data)
		}
	}
}

func TestMarkdownTimelineWriter_Empty(t *testing.T) {
	data := writeReport(t, &MarkdownTimelineWriter{}, emptyReport(), "empty.md")

	if !strings.Contains(data, "_No versions found._") {
		t.Errorf("expected empty marker:\n%s", data)
	}
	if strings.Contains(data, "Skipped revisions") {
		t.Errorf("unexpected skipped section:\n%s", data)
	}
}

func TestConsoleTimelineWriter_Write(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	data := writeReport(t, &ConsoleTimelineWriter{}, sampleReport(), "timeline.txt")

	for _, want := range []string{
		"Version history of acme/foo in composer.lock",
		"Branch: main",
		"Revisions sampled: 4 (skipped: 1)",
		"(none)",
		"2.0.0",
		"3333333",
	} {
		if !strings.Contains(data, want) {
			t.Errorf("console output missing %q:\n%s", want, data)
		}
	}
}

func TestConsoleTimelineWriter_Empty(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	data := writeReport(t, &ConsoleTimelineWriter{}, emptyReport(), "empty.txt")
	if !strings.Contains(data, "No versions found.") {
		t.Errorf("expected empty marker:\n%s", data)
	}
}

func TestJSONLockFileWriter_Write(t *testing.T) {
	path := t.TempDir() + "/locks.json"
	report := &LockFileReport{
		RepoPath: "/test/repo",
		Files: []LockFileItem{
			{Path: "composer.lock", Format: "composer"},
			{Path: "vendor/yarn.lock"},
		},
	}
	if err := (&JSONLockFileWriter{}).Write(report, OutputOptions{OutputPath: path}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := readTestFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}

	var parsed JSONLockFileReport
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(parsed.Files) != 2 {
		t.Fatalf("len(files) = %d, expected 2", len(parsed.Files))
	}
	if parsed.Files[0].Format == nil || *parsed.Files[0].Format != "composer" {
		t.Errorf("files[0].format = %v", parsed.Files[0].Format)
	}
	if parsed.Files[1].Format != nil {
		t.Errorf("files[1].format = %v, expected null", *parsed.Files[1].Format)
	}
}
