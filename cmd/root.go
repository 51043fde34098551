package cmd

import (
	"fmt"
	"os"

	"github.com/masmgr/locktrail-go/config"
	"github.com/masmgr/locktrail-go/internal/output"
	"github.com/urfave/cli/v2"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:      "locktrail",
		Usage:     "Version history of a library in a dependency lock file",
		Version:   "1.0.0",
		ArgsUsage: "[library]",
		Commands: []*cli.Command{
			HistoryCmd(),
			LocksCmd(),
			FormatsCmd(),
		},
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		}, historyFlags()...),
		Action: legacyAction,
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository (or any directory inside it)",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:    "branch",
			Aliases: []string{"b"},
			Usage:   "Revision to start from (default: from config or HEAD)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json, csv, markdown, ci)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
	}
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch s {
	case "json":
		return output.FormatJSON
	case "csv":
		return output.FormatCSV
	case "markdown", "md":
		return output.FormatMarkdown
	case "ci", "ndjson":
		return output.FormatCI
	default:
		return output.FormatConsole
	}
}

// loadConfig loads configuration from file or defaults and applies CLI overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if lockFile := c.String("lock-file"); lockFile != "" {
		cfg.LockFile = lockFile
	}
	if branch := c.String("branch"); branch != "" {
		cfg.Branch = branch
	}
	if format := c.String("format"); format != "" {
		cfg.Output.Format = format
	}
	if c.Bool("quiet") {
		cfg.Output.ShowSkipped = false
	}
	if patterns := c.StringSlice("pattern"); len(patterns) > 0 {
		cfg.Discovery.Patterns = patterns
	}

	return cfg, nil
}

// legacyAction handles the default command behavior.
// When a library name is provided as an argument, it runs the history command.
func legacyAction(c *cli.Context) error {
	// If no args and no subcommand, show help
	if c.NArg() == 0 {
		return cli.ShowAppHelp(c)
	}

	return HistoryCmd().Action(c)
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
