// Package dfs implements the depth-first analyses of a core.Graph: cycle
// detection and connectivity (bridges and articulation points).
//
// What:
//
//   - HasCycle / DetectCycle: directed graphs use vertex colouring (White,
//     Gray, Black) and report a cycle when a Gray vertex is re-entered;
//     undirected graphs report a cycle when a visited neighbor other than the
//     DFS parent is seen. Self-loops are cycles in both modes. Every component
//     is visited; the walk stops at the first cycle.
//   - Connectivity: one low-link DFS per component of an undirected graph.
//     Tree edge u→v is a bridge iff low[v] > disc[u]; the root is an
//     articulation point iff it has more than one DFS child; any other u is
//     one iff some child v has low[v] >= disc[u].
//
// Both walks keep their frames on an explicit heap-allocated stack, so a
// 200,000-vertex path does not grow the goroutine stack.
//
// Complexity:
//
//   - DetectCycle:  Time O(V+E), Memory O(V)
//   - Connectivity: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil  graph pointer is nil
//   - ErrDirected  Connectivity called on a directed graph
package dfs
