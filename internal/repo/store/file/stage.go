package file

import (
	"fmt"
	"log/slog"

	"github.com/keshon/gitlet/internal/errs"
	"github.com/keshon/gitlet/internal/repo/store/blob"
)

// Add stages rel against the head file table. A pending removal is
// dropped first; a removed file that is still missing is restored from
// the content captured at removal time. Content equal to head's leaves
// the path unstaged.
func (fc *FileContext) Add(rel string, head map[string]string) error {
	ix, err := fc.LoadIndex()
	if err != nil {
		return err
	}

	if captured, ok := ix.Removals[rel]; ok {
		delete(ix.Removals, rel)
		if _, present, err := fc.ReadWorking(rel); err != nil {
			return err
		} else if !present {
			if err := fc.RestoreBlob(rel, captured); err != nil {
				return err
			}
			slog.Debug("restored removed file", "path", rel)
		}
	}

	data, ok, err := fc.ReadWorking(rel)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("add %q: %w", rel, errs.ErrFileNotFound)
	}

	key := blob.Key(data)
	if headKey, tracked := head[rel]; tracked && headKey == key {
		delete(ix.Additions, rel)
		slog.Debug("unchanged since head, unstaged", "path", rel)
		return fc.SaveIndex(ix)
	}

	if _, err := fc.BlobCtx.Put(data); err != nil {
		return err
	}
	ix.StageAddition(rel, Addition{Blob: key, Fingerprint: Fingerprint(data), Size: int64(len(data))})
	slog.Debug("staged", "path", rel, "blob", key)
	return fc.SaveIndex(ix)
}

// Remove unstages a pending addition, or stages the removal of a file
// tracked by head and deletes it from the working tree.
func (fc *FileContext) Remove(rel string, head map[string]string) error {
	ix, err := fc.LoadIndex()
	if err != nil {
		return err
	}

	if _, staged := ix.Additions[rel]; staged {
		delete(ix.Additions, rel)
		slog.Debug("unstaged", "path", rel)
		return fc.SaveIndex(ix)
	}

	headKey, tracked := head[rel]
	if !tracked {
		return fmt.Errorf("rm %q: %w", rel, errs.ErrNothingToRemove)
	}

	captured := headKey
	if prev, ok := ix.Removals[rel]; ok {
		captured = prev
	}
	data, present, err := fc.ReadWorking(rel)
	if err != nil {
		return err
	}
	if present {
		if captured, err = fc.BlobCtx.Put(data); err != nil {
			return err
		}
	}

	ix.StageRemoval(rel, captured)
	if err := fc.SaveIndex(ix); err != nil {
		return err
	}
	if present {
		if err := fc.RemoveWorking(rel); err != nil {
			return err
		}
	}
	slog.Debug("staged removal", "path", rel)
	return nil
}
