package config

import "path/filepath"

const (
	RepoDir       = ".gitlet"
	CommitsDir    = "commits"
	BranchesDir   = "branches"
	ObjectsDir    = "objects"
	HeadFile      = "HEAD"
	IndexFile     = "index.json"
	GlobalLogFile = "global-log"
	LogFile       = "log"
	SettingsFile  = "config.json"

	IgnoreFile = ".gitletignore"
)

const (
	DefaultBranch = "master"
)

// LogLevelEnv selects the slog level (debug, info, warn, error).
const LogLevelEnv = "GITLET_LOG_LEVEL"

// RepoConfig holds the resolved locations of a repository.
type RepoConfig struct {
	WorkingTreeDir string
	RepoDir        string
}

// NewRepoConfig returns the layout for a working tree rooted at dir.
func NewRepoConfig(dir string) *RepoConfig {
	return &RepoConfig{
		WorkingTreeDir: dir,
		RepoDir:        filepath.Join(dir, RepoDir),
	}
}

func (c *RepoConfig) CommitsDir() string    { return filepath.Join(c.RepoDir, CommitsDir) }
func (c *RepoConfig) BranchesDir() string   { return filepath.Join(c.RepoDir, BranchesDir) }
func (c *RepoConfig) ObjectsDir() string    { return filepath.Join(c.RepoDir, ObjectsDir) }
func (c *RepoConfig) HeadFile() string      { return filepath.Join(c.RepoDir, HeadFile) }
func (c *RepoConfig) IndexFile() string     { return filepath.Join(c.RepoDir, IndexFile) }
func (c *RepoConfig) GlobalLogFile() string { return filepath.Join(c.RepoDir, GlobalLogFile) }
func (c *RepoConfig) LogFile() string       { return filepath.Join(c.RepoDir, LogFile) }
func (c *RepoConfig) SettingsFile() string  { return filepath.Join(c.RepoDir, SettingsFile) }
func (c *RepoConfig) IgnoreFile() string    { return filepath.Join(c.WorkingTreeDir, IgnoreFile) }

// WorkPath maps a repository-relative slash path to its location in the working tree.
func (c *RepoConfig) WorkPath(rel string) string {
	return filepath.Join(c.WorkingTreeDir, filepath.FromSlash(rel))
}
