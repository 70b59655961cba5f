// SPDX-License-Identifier: MIT
//
// impl_path.go - Path(n) and Cycle(n).
//
// Both emit edges in increasing i; Cycle closes with (n-1)→0.
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

// Path returns a Constructor for the simple path P_n (n ≥ MinPathNodes).
func Path(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		base := d.addNodes(n)
		var i int
		for i = 1; i < n; i++ {
			d.addEdge(cfg, base+i-1, base+i)
		}

		return nil
	}
}

// Cycle returns a Constructor for the simple cycle C_n (n ≥ MinCycleNodes).
func Cycle(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		base := d.addNodes(n)
		var i int
		for i = 0; i < n; i++ {
			d.addEdge(cfg, base+i, base+(i+1)%n)
		}

		return nil
	}
}
