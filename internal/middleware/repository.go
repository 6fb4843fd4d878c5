package middleware

import (
	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/repo"
)

// WithRepository opens the repository enclosing the working directory and
// hands it to the command. Outside a repository the command does not run.
func WithRepository() command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *command.Context) error {
				r, err := repo.OpenFrom(ctx.WorkDir, ctx.RepoOptions())
				if err != nil {
					return err
				}
				ctx.Repo = r
				return cmd.Run(ctx)
			},
		}
	}
}
