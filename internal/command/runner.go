package command

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/keshon/gitlet/internal/errs"
)

// RunCLI is the main entrypoint for executing commands against the
// process's working directory. It never returns.
func RunCLI(args []string) {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	ctx := &Context{Stdout: os.Stdout, WorkDir: wd}
	os.Exit(Execute(args, ctx, os.Stderr))
}

// Execute runs args against the registered commands and returns the exit code.
func Execute(args []string, ctx *Context, stderr io.Writer) int {
	return tree.Execute(args, ctx, stderr)
}

// Execute resolves args, parses flags and runs the command.
// User-facing failures are printed to ctx.Stdout as one line with exit
// code 0; anything else goes to stderr with exit code 1.
func (t *CommandTree) Execute(args []string, ctx *Context, stderr io.Writer) int {
	err := t.execute(args, ctx)
	if err == nil {
		return 0
	}
	if e, ok := errs.As(err); ok {
		slog.Debug("command failed", "kind", e.Kind, "err", err)
		fmt.Fprintln(ctx.Stdout, e.Msg)
		return 0
	}
	fmt.Fprintln(stderr, "Error:", err)
	return 1
}

func (t *CommandTree) execute(args []string, ctx *Context) error {
	node, remaining, err := t.Resolve(args)
	if err != nil {
		return err
	}
	cmd := node.Cmd

	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cmd.Flags(fs)

	// without declared flags operands pass through untouched, "--" included
	declared := false
	fs.VisitAll(func(*flag.Flag) { declared = true })
	if declared {
		if err := fs.Parse(remaining); err != nil {
			return fmt.Errorf("%v: %w", err, errs.ErrIncorrectOperands)
		}
		remaining = fs.Args()
	}

	ctx.Args = remaining
	ctx.Flags = fs
	return cmd.Run(ctx)
}

// ExactArgs fails with IncorrectOperands unless ctx holds n operands.
func ExactArgs(ctx *Context, n int) error {
	if len(ctx.Args) != n {
		return fmt.Errorf("expected %d operands, got %d: %w", n, len(ctx.Args), errs.ErrIncorrectOperands)
	}
	return nil
}
