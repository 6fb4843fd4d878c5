package log

import (
	"flag"
	"fmt"
	"strings"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/middleware"
	"github.com/keshon/gitlet/internal/repo/meta"
)

type Command struct {
	limit int
}

func (c *Command) Name() string      { return "log" }
func (c *Command) Aliases() []string { return []string{"commits"} }
func (c *Command) Usage() string     { return "log [-n <count>]" }
func (c *Command) Brief() string     { return "Show the history of the current branch" }
func (c *Command) Help() string {
	return `Show commits from the head commit back to the initial commit, following
first parents only. Merge commits list both parents.

Options:
  -n <count>   Show at most count commits.`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet) {
	fs.IntVar(&c.limit, "n", 0, "limit number of commits")
}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExactArgs(ctx, 0); err != nil {
		return err
	}

	if c.limit <= 0 {
		out, err := ctx.Repo.RenderLog()
		if err != nil {
			return err
		}
		fmt.Fprint(ctx.Stdout, out)
		return nil
	}

	var b strings.Builder
	shown := 0
	for cm, err := range ctx.Repo.Log() {
		if err != nil {
			return err
		}
		b.WriteString(meta.FormatLogEntry(cm) + "\n")
		if shown++; shown == c.limit {
			break
		}
	}
	fmt.Fprint(ctx.Stdout, b.String())
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
