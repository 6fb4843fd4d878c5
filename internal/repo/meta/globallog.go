package meta

import (
	"fmt"

	"github.com/keshon/gitlet/internal/util"
)

// ReadGlobalLog returns the rendered history of every commit, newest first.
func (mc *MetaContext) ReadGlobalLog() (string, error) {
	data, err := mc.FS.ReadFile(mc.Config.GlobalLogFile())
	if err != nil {
		if mc.FS.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read global log: %w", err)
	}
	return string(data), nil
}

func (mc *MetaContext) prependGlobalLog(c *Commit) error {
	existing, err := mc.ReadGlobalLog()
	if err != nil {
		return err
	}
	entry := FormatLogEntry(c) + "\n"
	if err := util.WriteFileAtomic(mc.FS, mc.Config.GlobalLogFile(), []byte(entry+existing)); err != nil {
		return fmt.Errorf("failed to write global log: %w", err)
	}
	return nil
}

// WriteLog caches the rendered log of the current branch.
func (mc *MetaContext) WriteLog(rendered string) error {
	if err := util.WriteFileAtomic(mc.FS, mc.Config.LogFile(), []byte(rendered)); err != nil {
		return fmt.Errorf("failed to write log cache: %w", err)
	}
	return nil
}
