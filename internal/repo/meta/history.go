package meta

import (
	"fmt"
	"iter"
)

// Walk yields commits along first-parent links starting at id, ending at the root.
func (mc *MetaContext) Walk(id string) iter.Seq2[*Commit, error] {
	return func(yield func(*Commit, error) bool) {
		seen := map[string]bool{}
		for id != "" {
			if seen[id] {
				yield(nil, fmt.Errorf("commit %q: parent cycle", id))
				return
			}
			seen[id] = true

			c, err := mc.GetCommit(id)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(c, nil) {
				return
			}
			id = c.Parent
		}
	}
}
