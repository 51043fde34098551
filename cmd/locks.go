package cmd

import (
	"fmt"
	"path"

	"github.com/masmgr/locktrail-go/internal/lockfile"
	"github.com/masmgr/locktrail-go/internal/output"
	"github.com/urfave/cli/v2"
)

// LocksCmd returns the locks command.
func LocksCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.StringSliceFlag{
			Name:    "pattern",
			Aliases: []string{"p"},
			Usage:   "Glob patterns to match (can be specified multiple times; default: from config)",
		},
	)

	return &cli.Command{
		Name:   "locks",
		Usage:  "List lock files in the starting revision",
		Flags:  flags,
		Action: locksAction,
	}
}

func locksAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	files, err := ctx.Reader.FindFiles(ctx.Config.Discovery.Patterns)
	if err != nil {
		return fmt.Errorf("failed to list lock files: %w", err)
	}

	report := &output.LockFileReport{
		RepoPath: ctx.RepoPath,
		Branch:   ctx.Config.Branch,
		Files:    make([]output.LockFileItem, 0, len(files)),
	}
	for _, f := range files {
		item := output.LockFileItem{Path: f}
		if format, ok := lockfile.Guess(path.Base(f)); ok {
			item.Format = format.Name()
		}
		report.Files = append(report.Files, item)
	}

	opts := ctx.OutputOptions(c)
	return output.NewLockFileReportWriter(opts.Format).Write(report, opts)
}
