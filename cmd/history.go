package cmd

import (
	"errors"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/fatih/color"
	"github.com/masmgr/locktrail-go/internal/lockfile"
	"github.com/masmgr/locktrail-go/internal/output"
	"github.com/masmgr/locktrail-go/internal/timeline"
	"github.com/urfave/cli/v2"
)

// historyFlags are the history command's flags. The root command carries
// them too so that `locktrail <library>` accepts the same options.
func historyFlags() []cli.Flag {
	return append(commonFlags(),
		&cli.StringFlag{
			Name:    "lock-file",
			Aliases: []string{"l"},
			Usage:   "Lock file path, absolute or relative to the repository root (default: from config or composer.lock)",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Do not report skipped revisions on stderr",
		},
	)
}

// HistoryCmd returns the history command.
func HistoryCmd() *cli.Command {
	return &cli.Command{
		Name:      "history",
		Aliases:   []string{"h"},
		Usage:     "Show when each version of a library entered the lock file",
		ArgsUsage: "<library>",
		Flags:     historyFlags(),
		Action:    historyAction,
	}
}

func historyAction(c *cli.Context) error {
	library := c.Args().First()
	if library == "" {
		return errors.New("missing library name")
	}

	start := time.Now()

	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	opts := ctx.OutputOptions(c)
	if opts.Format == output.FormatConsole {
		color.New(color.FgGreen).Fprintf(os.Stderr, "Reading %s history in %s\n", ctx.Reader.Path(), ctx.RepoPath)
	}

	if _, ok := lockfile.Guess(path.Base(ctx.Reader.Path())); !ok {
		color.New(color.FgYellow).Fprintf(os.Stderr, "warning: %s is not a supported lock file; every revision will be skipped\n", ctx.Reader.Path())
	}

	tl, err := timeline.Build(ctx.Reader, library)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if ctx.Config.Output.ShowSkipped {
		reportSkipped(tl.Skipped)
	}

	report := &output.TimelineReport{
		RepoPath:    ctx.RepoPath,
		Branch:      ctx.Config.Branch,
		GeneratedAt: time.Now(),
		Timeline:    tl,
	}

	writer := output.NewTimelineReportWriter(opts.Format)
	if err := writer.Write(report, opts); err != nil {
		return err
	}

	if opts.Format == output.FormatConsole {
		fmt.Fprintf(os.Stderr, "\nCompleted in %s\n", time.Since(start))
	}
	return nil
}

// reportSkipped prints one warning per dropped revision, oldest first.
func reportSkipped(skipped []*timeline.SampleError) {
	warn := color.New(color.FgYellow)
	for i := len(skipped) - 1; i >= 0; i-- {
		s := skipped[i]
		warn.Fprintf(os.Stderr, "warning: skipped %s %s (%s): %v\n",
			s.Commit.ShortSHA(), s.Commit.When.Format("2006-01-02"), s.Reason, s.Err)
	}
}
