package output

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/masmgr/locktrail-go/internal/lockfile"
)

// ConsoleTimelineWriter writes timeline reports to the console.
type ConsoleTimelineWriter struct{}

// Write outputs the timeline report to the console.
func (w *ConsoleTimelineWriter) Write(report *TimelineReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	tl := report.Timeline
	color.New(color.FgGreen).Fprintf(out, "Version history of %s in %s\n", tl.Library, tl.LockFile)
	fmt.Fprintf(out, "Repository: %s\n", report.RepoPath)
	if report.Branch != "" {
		fmt.Fprintf(out, "Branch: %s\n", report.Branch)
	}
	fmt.Fprintf(out, "Revisions sampled: %d (skipped: %d)\n\n", tl.SampleCount, len(tl.Skipped))

	if len(tl.Entries) == 0 {
		color.New(color.FgYellow).Fprintln(out, "No versions found.")
		return nil
	}

	layout := timeLayout(options)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "#\tDate\tVersion\tCommit\tMessage")
	for i, e := range tl.Entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			i+1,
			e.When.Format(layout),
			getVersionColor(e.Version)("%s", e.Version),
			e.Commit.ShortSHA(),
			truncateMessage(e.Commit.Message, 60),
		)
	}

	return tw.Flush()
}

func getVersionColor(v lockfile.Version) func(string, ...interface{}) string {
	if !v.Present {
		return color.RedString
	}
	return color.YellowString
}

// ConsoleLockFileWriter writes lock file listings to the console.
type ConsoleLockFileWriter struct{}

// Write outputs the lock file listing to the console.
func (w *ConsoleLockFileWriter) Write(report *LockFileReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	color.New(color.FgGreen).Fprintf(out, "Lock files in %s\n", report.RepoPath)
	if len(report.Files) == 0 {
		color.New(color.FgYellow).Fprintln(out, "No lock files found.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Path\tFormat")
	for _, f := range report.Files {
		format := f.Format
		if format == "" {
			format = color.RedString("unsupported")
		}
		fmt.Fprintf(tw, "%s\t%s\n", f.Path, format)
	}
	return tw.Flush()
}
