package help

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "help" }
func (c *Command) Aliases() []string { return []string{"h", "?"} }
func (c *Command) Usage() string     { return "help [command]" }
func (c *Command) Brief() string     { return "Show help for commands" }
func (c *Command) Help() string {
	return `Display help information for commands.

Usage:
  help          List all commands.
  help <name>   Show detailed help for a specific command.`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	switch len(ctx.Args) {
	case 0:
		return listAllCommands(ctx.Stdout, command.AllCommands())
	case 1:
		cmd, ok := command.GetCommand(strings.ToLower(ctx.Args[0]))
		if !ok {
			return errs.ErrUnknownCommand
		}
		return commandHelp(ctx.Stdout, cmd)
	}
	return errs.ErrIncorrectOperands
}

// commandHelp shows detailed help for a specific command
func commandHelp(w io.Writer, cmd command.Command) error {
	if usage := cmd.Usage(); usage != "" {
		fmt.Fprintf(w, "Usage: %s\n\n", usage)
	}
	fmt.Fprintf(w, "%s\n", cmd.Help())
	if aliases := cmd.Aliases(); len(aliases) > 0 {
		fmt.Fprintf(w, "\nAliases: %s\n", strings.Join(aliases, ", "))
	}
	return nil
}

// listAllCommands lists all commands in a Git-style layout
func listAllCommands(w io.Writer, commands []command.Command) error {
	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name() < commands[j].Name()
	})

	fmt.Fprint(w, "Available commands:\n\n")
	longest := 0
	for _, cmd := range commands {
		longest = max(longest, len(cmd.Name()))
	}

	for _, cmd := range commands {
		name := cmd.Name()
		desc := cmd.Brief()
		if desc == "" {
			desc = "-"
		}
		padding := strings.Repeat(" ", longest-len(name)+2)
		fmt.Fprintf(w, "  %s%s%s\n", name, padding, desc)
	}

	fmt.Fprintln(w, "\nType 'help <command>' to see detailed information about a specific command.")
	return nil
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugArgsPrint(),
		),
	)
}
