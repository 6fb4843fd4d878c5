package diff

import (
	"flag"
	"fmt"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "diff" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "diff [<file>...]" }
func (c *Command) Brief() string     { return "Show changes between the head commit and the working tree" }
func (c *Command) Help() string {
	return `Print unified diffs of tracked files whose working content differs from the
head commit. With file operands only those files are compared.`
}
func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	out, err := ctx.Repo.Diff(ctx.Args...)
	if err != nil {
		return err
	}
	fmt.Fprint(ctx.Stdout, out)
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
