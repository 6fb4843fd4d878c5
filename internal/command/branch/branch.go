package branch

import (
	"flag"
	"fmt"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "branch" }
func (c *Command) Aliases() []string { return []string{"br"} }
func (c *Command) Usage() string     { return "branch [<branch-name>]" }
func (c *Command) Brief() string     { return "List all branches or create a new one" }

func (c *Command) Help() string {
	return `List all branches or create a new one.

Usage:
  branch        - list all branches (current marked with '*')
  branch <name> - create a branch at the head commit; HEAD stays where it is`
}
func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	r := ctx.Repo

	switch len(ctx.Args) {
	case 1:
		_, err := r.CreateBranch(ctx.Args[0])
		return err
	case 0:
	default:
		return errs.ErrIncorrectOperands
	}

	st, err := r.LoadState()
	if err != nil {
		return err
	}
	all, err := r.ListBranches()
	if err != nil {
		return fmt.Errorf("failed to list branches: %w", err)
	}
	for _, b := range all {
		prefix := "  "
		if b.Name == st.Branch {
			prefix = "* "
		}
		line := prefix + b.Name
		if b.Upstream != "" {
			line += " (from " + b.Upstream + ")"
		}
		fmt.Fprintln(ctx.Stdout, line)
	}
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
