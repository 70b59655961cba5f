// Package bfs orders a directed core.Graph breadth-first with Kahn's
// algorithm.
//
// TopologicalSort seeds a FIFO queue with every zero in-degree vertex in
// ascending id order, then repeatedly dequeues u, appends it to the order and
// decrements the in-degree of each neighbor (in adjacency order), enqueuing
// neighbors that reach zero. If fewer than n vertices are emitted the graph
// has a cycle and ErrCycleDetected is returned.
//
// Self-loops keep their vertex's in-degree above zero, so they are reported
// as cycles. Undirected graphs are rejected with ErrNotDirected.
//
// Options: WithContext (cancellation, checked once per vertex) and
// WithOnVisit (per-vertex hook).
//
// Complexity: O(V+E) time, O(V) memory.
package bfs
