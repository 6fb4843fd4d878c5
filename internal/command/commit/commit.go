package commit

import (
	"flag"
	"log/slog"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string  { return "commit" }
func (c *Command) Brief() string { return "Commit staged changes to the current branch" }
func (c *Command) Usage() string { return `commit "<message>"` }
func (c *Command) Help() string {
	return `Record a new commit from the head commit and the staging area.

Usage:
  commit "<message>"   - the message is a single operand; quote it`
}
func (c *Command) Aliases() []string              { return []string{"ci"} }
func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if len(ctx.Args) == 0 {
		return errs.ErrEmptyMessage
	}
	if err := command.ExactArgs(ctx, 1); err != nil {
		return err
	}

	created, err := ctx.Repo.Commit(ctx.Args[0])
	if err != nil {
		return err
	}
	slog.Info("committed", "id", created.ID, "files", len(created.Files))
	return nil
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithRepository(),
			middleware.WithDebugArgsPrint(),
		),
	)
}
