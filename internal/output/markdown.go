package output

import "fmt"

// MarkdownTimelineWriter writes timeline reports as Markdown.
type MarkdownTimelineWriter struct{}

// Write outputs the timeline report as Markdown.
func (w *MarkdownTimelineWriter) Write(report *TimelineReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	tl := report.Timeline
	layout := timeLayout(options)

	// Header
	fmt.Fprintf(out, "# Version history of `%s`\n\n", tl.Library)
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.RepoPath)
	fmt.Fprintf(out, "**Lock file:** `%s`\n\n", tl.LockFile)
	if report.Branch != "" {
		fmt.Fprintf(out, "**Branch:** %s\n\n", report.Branch)
	}
	fmt.Fprintf(out, "**Revisions sampled:** %d\n\n", tl.SampleCount)

	// Table
	fmt.Fprintln(out, "## Versions")
	fmt.Fprintln(out)
	if len(tl.Entries) == 0 {
		fmt.Fprintln(out, "_No versions found._")
	} else {
		fmt.Fprintln(out, "| # | Date | Version | Commit | Message |")
		fmt.Fprintln(out, "|---|------|---------|--------|---------|")
		for i, e := range tl.Entries {
			version := "_absent_"
			if e.Version.Present {
				version = "`" + e.Version.Number + "`"
			}
			fmt.Fprintf(out, "| %d | %s | %s | `%s` | %s |\n",
				i+1, e.When.Format(layout), version, e.Commit.ShortSHA(),
				escapeMarkdown(truncateMessage(e.Commit.Message, 60)))
		}
	}

	if len(tl.Skipped) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "## Skipped revisions")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "| Commit | Date | Reason |")
		fmt.Fprintln(out, "|--------|------|--------|")
		for _, s := range tl.Skipped {
			fmt.Fprintf(out, "| `%s` | %s | %s |\n", s.Commit.ShortSHA(), s.Commit.When.Format(layout), s.Reason)
		}
	}

	return nil
}
