// This file declares the Ordering result type, the Metric strategy set,
// sentinel errors, and options.

package elimorder

import (
	"errors"
	"sort"
)

// Sentinel errors for ordering computation.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("elimorder: graph is nil")

	// ErrUnknownNode indicates a node absent from the graph.
	ErrUnknownNode = errors.New("elimorder: node not in graph")

	// ErrUnknownMetric indicates an unrecognized greedy metric.
	ErrUnknownMetric = errors.New("elimorder: unknown metric")
)

// Metric names the closed set of greedy scoring strategies. A closed
// enum (rather than arbitrary closures) keeps ordering behavior
// auditable: each metric documents its score and shares the lowest-ID
// tie-break.
type Metric int

const (
	// MinUnmarkedNeighbors scores a node by its count of still-unmarked
	// neighbors — an approximation of the minimum-degree ordering.
	// Neighbors outside the node set are never marked and always count.
	MinUnmarkedNeighbors Metric = iota

	// MinFill scores a node by the number of fill-in edges its
	// elimination would insert: the missing edges among its still-unmarked
	// neighbors.
	MinFill
)

// String returns the metric name.
func (m Metric) String() string {
	switch m {
	case MinUnmarkedNeighbors:
		return "MinUnmarkedNeighbors"
	case MinFill:
		return "MinFill"
	default:
		return "Unknown"
	}
}

// Option configures GreedyMetric.
type Option func(*Options)

// Options holds configurable ordering parameters.
type Options struct {
	// Metric selects the greedy scoring strategy.
	Metric Metric
}

// DefaultOptions returns Options with the MinUnmarkedNeighbors metric.
func DefaultOptions() Options {
	return Options{Metric: MinUnmarkedNeighbors}
}

// WithMetric returns an Option selecting the greedy scoring strategy.
func WithMetric(m Metric) Option {
	return func(o *Options) { o.Metric = m }
}

// Ordering is a total rank assignment over a node set: rank 0 is
// eliminated first. An Ordering is produced once per query, consumed
// once, then discarded.
type Ordering struct {
	rank map[string]int
}

// FromSequence builds an Ordering ranking ids in the given elimination
// sequence (ids[0] gets rank 0). Duplicates keep their first rank.
func FromSequence(ids []string) Ordering {
	rank := make(map[string]int, len(ids))
	for i, id := range ids {
		if _, ok := rank[id]; !ok {
			rank[id] = i
		}
	}

	return Ordering{rank: rank}
}

// Rank returns the elimination rank of id and whether id is ordered.
func (o Ordering) Rank(id string) (int, bool) {
	r, ok := o.rank[id]

	return r, ok
}

// Len returns the number of ordered nodes.
func (o Ordering) Len() int { return len(o.rank) }

// Sequence returns the node IDs in elimination order (ascending rank).
func (o Ordering) Sequence() []string {
	out := make([]string, 0, len(o.rank))
	for id := range o.rank {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return o.rank[out[i]] < o.rank[out[j]] })

	return out
}
