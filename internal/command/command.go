package command

import (
	"flag"
	"io"
	"time"

	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/repo"
)

// Command represents a cli command
type Command interface {
	Name() string
	Aliases() []string
	Usage() string
	Brief() string
	Help() string
	Subcommands() []Command
	Flags(fs *flag.FlagSet)
	Run(ctx *Context) error
}

// Context represents a cli context
type Context struct {
	Args    []string
	Flags   *flag.FlagSet
	Stdout  io.Writer
	WorkDir string

	// FS and Now are handed to the repository; nil selects the OS
	// filesystem and the wall clock.
	FS  fs.FS
	Now func() time.Time

	// Repo is set by middleware for commands that need an open repository.
	Repo *repo.Repository
}

// RepoOptions returns the options a command opens or creates a repository with.
func (ctx *Context) RepoOptions() repo.Options {
	return repo.Options{FS: ctx.FS, Now: ctx.Now, WorkDir: ctx.WorkDir}
}
