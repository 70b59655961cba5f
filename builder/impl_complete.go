// SPDX-License-Identifier: MIT
//
// impl_complete.go - Complete(n) and CompleteBipartite(n1, n2).
//
// Undirected K_n emits each unordered pair once (i<j); directed K_n emits
// every ordered pair i≠j. Complexity: O(n²).

package builder

import "fmt"

// Complete returns a Constructor for the complete graph K_n.
func Complete(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		base := d.addNodes(n)
		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j || (!cfg.directed && j < i) {
					continue
				}
				d.addEdge(cfg, base+i, base+j)
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor for K_{n1,n2}. The left side takes
// the first n1 ids; every edge points left→right.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n1 < MinPartitionSize || n2 < MinPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				MethodCompleteBipartite, n1, n2, MinPartitionSize, ErrTooFewVertices)
		}

		left := d.addNodes(n1 + n2)
		right := left + n1
		var i, j int
		for i = 0; i < n1; i++ {
			for j = 0; j < n2; j++ {
				d.addEdge(cfg, left+i, right+j)
			}
		}

		return nil
	}
}
