package middleware

import (
	"fmt"
	"log/slog"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/errs"
)

// WithIntegrityCheck refuses to run the command while HEAD disagrees with
// the branch it names. It must run inside WithRepository.
func WithIntegrityCheck() command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *command.Context) error {
				if ctx.Repo == nil {
					return fmt.Errorf("%s: integrity check without an open repository", cmd.Name())
				}
				if err := ctx.Repo.CheckHead(); err != nil {
					slog.Warn("integrity check failed", "command", cmd.Name(), "err", err)
					return fmt.Errorf("%v; run verify for details: %w", err, errs.ErrIntegrityFailure)
				}
				return cmd.Run(ctx)
			},
		}
	}
}
