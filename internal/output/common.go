package output

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/masmgr/locktrail-go/internal/lockfile"
)

const (
	defaultTimeLayout = "2006-01-02 15:04:05"
	// absentVersion is written by machine formats for a library that is not in the lock file.
	absentVersion = ""
)

func timeLayout(options OutputOptions) string {
	if options.TimeLayout == "" {
		return defaultTimeLayout
	}
	return options.TimeLayout
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// versionValue returns the version number, or nil when absent.
func versionValue(v lockfile.Version) *string {
	if !v.Present {
		return nil
	}
	number := v.Number
	return &number
}

func versionCell(v lockfile.Version) string {
	if !v.Present {
		return absentVersion
	}
	return v.Number
}

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

// truncateMessage shortens msg to maxLen runes.
func truncateMessage(msg string, maxLen int) string {
	runes := []rune(msg)
	if len(runes) <= maxLen {
		return msg
	}
	return string(runes[:maxLen-3]) + "..."
}

func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"|", "\\|",
		"*", "\\*",
		"_", "\\_",
		"`", "\\`",
	)
	return replacer.Replace(s)
}
