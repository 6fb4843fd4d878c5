package merge

import (
	"flag"
	"fmt"
	"log/slog"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "merge" }
func (c *Command) Aliases() []string { return []string{"mg"} }
func (c *Command) Usage() string     { return "merge <branch-name>" }
func (c *Command) Brief() string     { return "Merge another branch into the current branch" }
func (c *Command) Help() string {
	return `Perform a three-way merge of the specified branch into the current branch,
using the latest common ancestor as the split point.

If the current branch is an ancestor of the given one it is fast-forwarded.
Conflicting files are written with both versions between markers, staged
and committed; resolve them in a follow-up commit.`
}
func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExactArgs(ctx, 1); err != nil {
		return err
	}

	res, err := ctx.Repo.Merge(ctx.Args[0])
	if err != nil {
		return err
	}
	if res.FastForward {
		fmt.Fprintln(ctx.Stdout, errs.ErrFastForward.Msg)
		return nil
	}
	if len(res.Conflicts) > 0 {
		slog.Debug("merge conflicts", "paths", res.Conflicts)
		fmt.Fprintln(ctx.Stdout, "Encountered a merge conflict.")
	}
	return nil
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithIntegrityCheck(),
			middleware.WithRepository(),
			middleware.WithDebugArgsPrint(),
		),
	)
}
