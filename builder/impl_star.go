// SPDX-License-Identifier: MIT
//
// impl_star.go - Star(n) and Wheel(n).
//
// The centre is the first node of the block; leaves (Star) or rim nodes
// (Wheel) follow in ascending order. Spokes point centre→leaf.

package builder

import "fmt"

// Star returns a Constructor for the star S_n: one centre and n-1 leaves.
func Star(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		center := d.addNodes(n)
		for i := 1; i < n; i++ {
			d.addEdge(cfg, center, center+i)
		}

		return nil
	}
}

// Wheel returns a Constructor for W_n: a centre joined to every node of a
// rim cycle C_{n-1}. Rim edges come first, then spokes.
func Wheel(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}

		center := d.addNodes(n)
		rim := n - 1
		var i int
		// 1. Rim cycle over center+1 .. center+rim.
		for i = 0; i < rim; i++ {
			d.addEdge(cfg, center+1+i, center+1+(i+1)%rim)
		}
		// 2. Spokes.
		for i = 1; i < n; i++ {
			d.addEdge(cfg, center, center+i)
		}

		return nil
	}
}
