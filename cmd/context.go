package cmd

import (
	"fmt"

	"github.com/masmgr/locktrail-go/config"
	"github.com/masmgr/locktrail-go/internal/git"
	"github.com/masmgr/locktrail-go/internal/output"
	"github.com/urfave/cli/v2"
)

// CommandContext holds common state for command execution.
// It encapsulates the shared setup logic across repository commands.
type CommandContext struct {
	Config   *config.Config
	RepoPath string
	Reader   *git.HistoryReader
}

// NewCommandContext loads configuration and opens the repository named by the CLI flags.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	repoPath := c.String("repo")
	if repoPath == "" {
		repoPath = "."
	}

	reader, err := git.NewHistoryReader(git.ReadOptions{
		RepoPath: repoPath,
		Branch:   cfg.Branch,
		Path:     cfg.LockFile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	return &CommandContext{
		Config:   cfg,
		RepoPath: repoPath,
		Reader:   reader,
	}, nil
}

// OutputOptions creates OutputOptions from CLI flags and configuration.
func (ctx *CommandContext) OutputOptions(c *cli.Context) output.OutputOptions {
	return output.OutputOptions{
		Format:     getOutputFormat(ctx.Config.Output.Format),
		OutputPath: c.String("output"),
		TimeLayout: ctx.Config.Output.TimeLayout,
	}
}
