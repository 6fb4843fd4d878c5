package middleware

import (
	"log/slog"

	"github.com/keshon/gitlet/internal/command"
)

// WithDebugArgsPrint logs the command and its operands at debug level.
func WithDebugArgsPrint() command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *command.Context) error {
				slog.Debug("run command", "name", cmd.Name(), "args", ctx.Args, "workdir", ctx.WorkDir)
				return cmd.Run(ctx)
			},
		}
	}
}
