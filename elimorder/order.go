// This file implements the two ordering heuristics: MaxCardinality and
// GreedyMetric (with fill-in edge insertion on a private working copy).

package elimorder

import (
	"fmt"
	"sort"

	"github.com/pgmgo/pgmgo/core"
)

// MaxCardinality ranks nodes by maximum-cardinality search: at each of
// len(nodes) iterations, the unmarked node with the most already-marked
// neighbors is ranked next (ties broken by lowest ID). The input graph
// is never mutated.
//
// Returns ErrGraphNil or ErrUnknownNode. An empty node set yields an
// empty Ordering.
// Complexity: O(n² · Δ) for n nodes with neighborhood size Δ.
func MaxCardinality(g *core.Graph, nodes []string) (Ordering, error) {
	// 1. Validate inputs.
	pool, err := validateNodes(g, nodes)
	if err != nil {
		return Ordering{}, err
	}

	marked := make(map[string]bool, len(pool))
	rank := make(map[string]int, len(pool))

	// 2. Rank one node per iteration.
	for i := range pool {
		best := ""
		bestCount := -1
		for _, n := range pool {
			if marked[n] {
				continue
			}
			count, err := neighborCount(g, n, func(nb string) bool { return marked[nb] })
			if err != nil {
				return Ordering{}, err
			}
			// Strict > keeps the lowest-ID tie-break: pool is sorted.
			if count > bestCount {
				best, bestCount = n, count
			}
		}
		rank[best] = i
		marked[best] = true
	}

	return Ordering{rank: rank}, nil
}

// GreedyMetric ranks nodes by greedy search over the configured metric
// (default MinUnmarkedNeighbors; ties broken by lowest ID). After
// ranking a node, a fill-in edge is inserted between every pair of its
// still-unmarked neighbors that are not yet adjacent — without the
// fill-ins, later neighbor counts would understate elimination cost.
//
// The caller's graph is never touched: all mutation happens on a private
// clone, which is returned (triangulated) alongside the Ordering for
// callers that want to inspect or reuse it.
//
// Returns ErrGraphNil, ErrUnknownNode or ErrUnknownMetric. An empty node
// set yields an empty Ordering and an unmodified clone.
// Complexity: O(n · (n·Δ + Δ²)); fill-in insertion dominates.
func GreedyMetric(g *core.Graph, nodes []string, opts ...Option) (Ordering, *core.Graph, error) {
	// 1. Validate inputs and options.
	pool, err := validateNodes(g, nodes)
	if err != nil {
		return Ordering{}, nil, err
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Metric != MinUnmarkedNeighbors && o.Metric != MinFill {
		return Ordering{}, nil, ErrUnknownMetric
	}

	// 2. Private working copy: fill-ins must not leak into the caller's graph.
	work := g.Clone()

	marked := make(map[string]bool, len(pool))
	rank := make(map[string]int, len(pool))

	// 3. Rank one node per iteration, then triangulate its neighborhood.
	for i := range pool {
		best := ""
		bestScore := 0
		for _, n := range pool {
			if marked[n] {
				continue
			}
			score, err := metricScore(work, n, o.Metric, marked)
			if err != nil {
				return Ordering{}, nil, err
			}
			// Strict < keeps the lowest-ID tie-break: pool is sorted.
			if best == "" || score < bestScore {
				best, bestScore = n, score
			}
		}

		if err = insertFillIns(work, best, marked); err != nil {
			return Ordering{}, nil, err
		}
		rank[best] = i
		marked[best] = true
	}

	return Ordering{rank: rank}, work, nil
}

// validateNodes checks the graph and node set, returning the deduplicated
// node pool sorted ascending (the deterministic scan order).
func validateNodes(g *core.Graph, nodes []string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]struct{}, len(nodes))
	pool := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		if !g.HasVertex(n) {
			return nil, fmt.Errorf("elimorder: node %q: %w", n, ErrUnknownNode)
		}
		pool = append(pool, n)
	}
	sort.Strings(pool)

	return pool, nil
}

// neighborCount counts the neighbors of n satisfying pred.
func neighborCount(g *core.Graph, n string, pred func(string) bool) (int, error) {
	nbs, err := g.Neighbors(n)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, nb := range nbs {
		if pred(nb) {
			count++
		}
	}

	return count, nil
}

// metricScore computes the greedy score of node n under m.
func metricScore(g *core.Graph, n string, m Metric, marked map[string]bool) (int, error) {
	switch m {
	case MinUnmarkedNeighbors:
		return neighborCount(g, n, func(nb string) bool { return !marked[nb] })
	case MinFill:
		return fillInCount(g, n, marked)
	default:
		return 0, ErrUnknownMetric
	}
}

// fillInCount counts the missing edges among n's still-unmarked
// neighbors — the fill-ins n's elimination would insert.
func fillInCount(g *core.Graph, n string, marked map[string]bool) (int, error) {
	nbs, err := unmarkedNeighbors(g, n, marked)
	if err != nil {
		return 0, err
	}
	count := 0
	for i := 0; i < len(nbs); i++ {
		for j := i + 1; j < len(nbs); j++ {
			if !g.HasEdge(nbs[i], nbs[j]) {
				count++
			}
		}
	}

	return count, nil
}

// insertFillIns connects every pair of n's still-unmarked neighbors.
func insertFillIns(g *core.Graph, n string, marked map[string]bool) error {
	nbs, err := unmarkedNeighbors(g, n, marked)
	if err != nil {
		return err
	}
	for i := 0; i < len(nbs); i++ {
		for j := i + 1; j < len(nbs); j++ {
			if err = g.EnsureEdge(nbs[i], nbs[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// unmarkedNeighbors returns n's neighbors not yet marked, sorted.
func unmarkedNeighbors(g *core.Graph, n string, marked map[string]bool) ([]string, error) {
	nbs, err := g.Neighbors(n)
	if err != nil {
		return nil, err
	}
	out := nbs[:0]
	for _, nb := range nbs {
		if !marked[nb] {
			out = append(out, nb)
		}
	}

	return out, nil
}
