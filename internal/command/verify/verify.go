package verify

import (
	"flag"
	"fmt"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/middleware"
)

type Command struct {
	quiet bool
}

func (c *Command) Name() string      { return "verify" }
func (c *Command) Aliases() []string { return []string{"check"} }
func (c *Command) Usage() string     { return "verify [-q]" }
func (c *Command) Brief() string     { return "Verify repository integrity" }
func (c *Command) Help() string {
	return `Check that every commit hashes to its id, every referenced blob exists and
hashes to its key, every branch points at a stored commit and HEAD agrees
with its branch.

Options:
  -q   Print problems only.`
}
func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&c.quiet, "q", false, "print problems only")
}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExactArgs(ctx, 0); err != nil {
		return err
	}

	rep, verr := ctx.Repo.Verify()
	if rep == nil {
		return verr
	}
	for _, p := range rep.Problems {
		fmt.Fprintln(ctx.Stdout, p)
	}
	if !c.quiet {
		fmt.Fprintf(ctx.Stdout, "Checked %d commits and %d blobs.\n", rep.Commits, rep.Blobs)
	}
	return verr
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
