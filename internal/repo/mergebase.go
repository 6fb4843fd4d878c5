package repo

import (
	"fmt"

	"github.com/keshon/gitlet/internal/repo/meta"
)

// commitGraph loads commits on demand for the lifetime of one operation.
type commitGraph struct {
	mc    *meta.MetaContext
	nodes map[string]*meta.Commit
	gens  map[string]int
}

func newCommitGraph(mc *meta.MetaContext) *commitGraph {
	return &commitGraph{
		mc:    mc,
		nodes: map[string]*meta.Commit{},
		gens:  map[string]int{},
	}
}

func (g *commitGraph) get(id string) (*meta.Commit, error) {
	if c, ok := g.nodes[id]; ok {
		return c, nil
	}
	c, err := g.mc.GetCommit(id)
	if err != nil {
		return nil, err
	}
	g.nodes[id] = c
	return c, nil
}

// distances walks every parent edge breadth-first from tip and returns
// the shortest distance to each ancestor, tip included.
func (g *commitGraph) distances(tip string) (map[string]int, error) {
	dist := map[string]int{tip: 0}
	queue := []string{tip}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		c, err := g.get(id)
		if err != nil {
			return nil, err
		}
		for _, p := range c.Parents() {
			if _, seen := dist[p]; seen {
				continue
			}
			dist[p] = dist[id] + 1
			queue = append(queue, p)
		}
	}
	return dist, nil
}

// generation is the length of the longest parent path from id to the root.
func (g *commitGraph) generation(id string) (int, error) {
	if n, ok := g.gens[id]; ok {
		return n, nil
	}

	type frame struct {
		id       string
		expanded bool
	}
	// a commit is in progress from its expansion until its generation is
	// known; only its own ancestors are pushed above it meanwhile
	inProgress := map[string]bool{}
	stack := []frame{{id: id}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if _, done := g.gens[top.id]; done {
			stack = stack[:len(stack)-1]
			continue
		}
		c, err := g.get(top.id)
		if err != nil {
			return 0, err
		}

		if !top.expanded {
			top.expanded = true
			inProgress[c.ID] = true
			for _, p := range c.Parents() {
				if _, done := g.gens[p]; done {
					continue
				}
				if inProgress[p] {
					return 0, fmt.Errorf("commit %q: parent cycle", p)
				}
				stack = append(stack, frame{id: p})
			}
			continue
		}

		best := -1
		for _, p := range c.Parents() {
			n, ok := g.gens[p]
			if !ok {
				return 0, fmt.Errorf("commit %q: generation of parent %q unknown", c.ID, p)
			}
			best = max(best, n)
		}
		g.gens[c.ID] = best + 1
		delete(inProgress, c.ID)
		stack = stack[:len(stack)-1]
	}
	return g.gens[id], nil
}

// mergeBase returns the latest common ancestor of a and b following both
// parent edges: the deepest shared ancestor, ties broken by the smaller
// combined distance to the tips and then by id.
func (g *commitGraph) mergeBase(a, b string) (string, error) {
	distA, err := g.distances(a)
	if err != nil {
		return "", err
	}
	distB, err := g.distances(b)
	if err != nil {
		return "", err
	}

	best, bestGen, bestDist := "", -1, 0
	for id, da := range distA {
		db, ok := distB[id]
		if !ok {
			continue
		}
		gen, err := g.generation(id)
		if err != nil {
			return "", err
		}
		d := da + db
		switch {
		case gen > bestGen,
			gen == bestGen && d < bestDist,
			gen == bestGen && d == bestDist && id < best:
			best, bestGen, bestDist = id, gen, d
		}
	}
	if best == "" {
		return "", fmt.Errorf("no common ancestor of %s and %s", a, b)
	}
	return best, nil
}

// SplitPoint returns the merge base of two commits.
func (r *Repository) SplitPoint(a, b string) (string, error) {
	return newCommitGraph(r.Meta).mergeBase(a, b)
}
