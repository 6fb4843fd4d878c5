package checkout

import (
	"flag"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/middleware"
	"github.com/keshon/gitlet/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "checkout" }
func (c *Command) Aliases() []string { return []string{"co"} }
func (c *Command) Usage() string {
	return "checkout -- <file> | checkout <commit> -- <file> | checkout <branch>"
}
func (c *Command) Brief() string { return "Restore a file or switch to another branch" }
func (c *Command) Help() string {
	return `Restore files or switch branches.

Usage:
  checkout -- <file>             restore file from the head commit
  checkout <commit> -- <file>    restore file from a commit (unique id prefix)
  checkout <branch>              switch the working tree and HEAD to branch`
}
func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

// request is one decoded form of the checkout operands.
type request interface {
	apply(r *repo.Repository) error
}

type fileRequest struct{ path string }

type commitFileRequest struct{ prefix, path string }

type branchRequest struct{ name string }

func (q fileRequest) apply(r *repo.Repository) error       { return r.CheckoutFile(q.path) }
func (q commitFileRequest) apply(r *repo.Repository) error { return r.CheckoutFileAt(q.prefix, q.path) }
func (q branchRequest) apply(r *repo.Repository) error     { return r.CheckoutBranch(q.name) }

func parse(args []string) (request, error) {
	switch {
	case len(args) == 2 && args[0] == "--":
		return fileRequest{path: args[1]}, nil
	case len(args) == 3 && args[1] == "--":
		return commitFileRequest{prefix: args[0], path: args[2]}, nil
	case len(args) == 1 && args[0] != "--":
		return branchRequest{name: args[0]}, nil
	}
	return nil, errs.ErrIncorrectOperands
}

func (c *Command) Run(ctx *command.Context) error {
	req, err := parse(ctx.Args)
	if err != nil {
		return err
	}
	return req.apply(ctx.Repo)
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
