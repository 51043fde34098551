package output

import (
	"encoding/csv"
	"os"
	"strconv"
)

// CSVTimelineWriter writes timeline reports as CSV, one row per version change.
type CSVTimelineWriter struct{}

// Write outputs the timeline report as CSV. Absent versions are empty cells.
func (w *CSVTimelineWriter) Write(report *TimelineReport, options OutputOptions) error {
	writer, file, err := createCSVWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	if err := writer.Write([]string{"Index", "Library", "Version", "Present", "Date", "Commit", "Message"}); err != nil {
		return err
	}

	tl := report.Timeline
	for i, e := range tl.Entries {
		row := []string{
			strconv.Itoa(i + 1),
			tl.Library,
			versionCell(e.Version),
			strconv.FormatBool(e.Version.Present),
			formatTime(e.When),
			e.Commit.SHA,
			e.Commit.Message,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func createCSVWriter(outputPath string) (*csv.Writer, *os.File, error) {
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return nil, nil, err
		}
		return csv.NewWriter(file), file, nil
	}
	return csv.NewWriter(os.Stdout), nil, nil
}
