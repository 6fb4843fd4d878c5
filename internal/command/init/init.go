package initcmd

import (
	"flag"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/middleware"
	"github.com/keshon/gitlet/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "init" }
func (c *Command) Aliases() []string { return []string{"initialize"} }
func (c *Command) Usage() string     { return "init" }
func (c *Command) Brief() string     { return "Initialize a new repository in the current directory" }
func (c *Command) Help() string {
	return `Create a .gitlet directory holding a single "initial commit" on branch master.
Fails if the current directory already holds a repository.`
}
func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExactArgs(ctx, 0); err != nil {
		return err
	}
	_, err := repo.Init(ctx.WorkDir, ctx.RepoOptions())
	return err
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugArgsPrint(),
		),
	)
}
