// Package elimorder computes elimination orderings — total rank
// assignments over a set of graph nodes — for variable-elimination
// inference. Finding an optimal ordering is NP-hard; these are the two
// standard greedy heuristics, both deterministic.
//
// 🚀 Why orderings matter:
//
//	The cost of eliminating a variable is exponential in the size of the
//	intermediate factor it creates, which is governed by the variable's
//	neighborhood in the (progressively triangulated) model graph. A good
//	ordering keeps neighborhoods — and therefore intermediate scopes —
//	small; ordering quality bounds the whole query's cost (treewidth).
//
// Heuristics:
//
//   - MaxCardinality: at each step pick the unmarked node with the most
//     *marked* neighbors. Suited to chordal-graph-oriented orderings.
//     Read-only on the input graph.
//   - GreedyMetric: at each step pick the unmarked node minimizing a
//     pluggable score (MinUnmarkedNeighbors — a min-degree
//     approximation, the default — or MinFill), then insert a fill-in
//     edge between every pair of its still-unmarked neighbors before
//     marking it. Fill-ins simulate the triangulated elimination graph
//     and are required for later neighbor counts to be correct.
//
// GreedyMetric never mutates the caller's graph: it clones the adjacency
// structure up front and returns the triangulated working copy alongside
// the ordering, so callers may keep or discard it.
//
// Both heuristics are inherently sequential — each step depends on the
// previous step's marking and fill-ins — and break ties by lowest node
// ID, so a given graph and node set always produce the same ordering.
//
// Complexity: O(n · (n + Δ²)) for n nodes with neighborhood size Δ
// (fill-in insertion dominates GreedyMetric).
//
// Errors:
//
//   - ErrGraphNil      if the graph is nil.
//   - ErrUnknownNode   if a node is missing from the graph.
//   - ErrUnknownMetric if an unrecognized metric is configured.
package elimorder
