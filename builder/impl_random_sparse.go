// SPDX-License-Identifier: MIT
//
// impl_random_sparse.go - RandomSparse(n, p), an Erdős–Rényi style sampler.
//
// Contract:
//   - n ≥ MinRandomNodes (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required for 0 < p < 1 (else ErrNeedRandSource).
//   - Undirected: unordered pairs {i,j}, i<j. Directed: ordered pairs i≠j.
//     Self-loops are never sampled.
//
// Determinism: trials run i asc then j asc, one rng draw per admissible pair.
// Complexity: O(n²) trials.

package builder

import "fmt"

// RandomSparse returns a Constructor keeping each admissible pair with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		// 1. Validate parameters in priority order.
		if n < MinRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomSparse, n, MinRandomNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		// 2. Nodes.
		base := d.addNodes(n)

		// 3. Bernoulli trials in a fixed order.
		var (
			i, j int
			keep bool
		)
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j || (!cfg.directed && j < i) {
					continue
				}
				switch {
				case cfg.rng == nil:
					keep = p == MaxProbability
				default:
					keep = cfg.rng.Float64() < p
				}
				if keep {
					d.addEdge(cfg, base+i, base+j)
				}
			}
		}

		return nil
	}
}
