package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/masmgr/locktrail-go/internal/lockfile"
	"github.com/urfave/cli/v2"
)

// FormatsCmd returns the formats command.
func FormatsCmd() *cli.Command {
	return &cli.Command{
		Name:   "formats",
		Usage:  "List supported lock file formats",
		Action: formatsAction,
	}
}

func formatsAction(c *cli.Context) error {
	color.Green("Supported lock files")

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "File\tFormat")
	for _, f := range lockfile.Formats() {
		fmt.Fprintf(tw, "%s\t%s\n", f.FileName(), f.Name())
	}
	return tw.Flush()
}
