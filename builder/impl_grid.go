// SPDX-License-Identifier: MIT
//
// impl_grid.go - Grid(rows, cols).
//
// Cell (r,c) gets id base + r*cols + c (row-major). For each cell the Right
// edge is emitted before the Bottom edge. Directed grids keep only those two
// orientations, so every directed grid is acyclic.
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import "fmt"

// Grid returns a Constructor for a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		base := d.addNodes(rows * cols)
		var r, c, u int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				u = base + r*cols + c
				if c+1 < cols {
					d.addEdge(cfg, u, u+1)
				}
				if r+1 < rows {
					d.addEdge(cfg, u, u+cols)
				}
			}
		}

		return nil
	}
}
