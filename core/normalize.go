package core

// edgeKey identifies one canonical slot: the ordered pair for directed
// graphs, the (min,max) pair for undirected ones.
type edgeKey struct{ u, v int }

// keyOf computes the canonical key of (from,to).
func keyOf(from, to int, directed bool) edgeKey {
	if directed || from <= to {
		return edgeKey{from, to}
	}

	return edgeKey{to, from}
}

// Normalize collapses spec.RawEdges into canonical edges.
//
// Steps:
//  1. Reject any endpoint outside [0, nodeCount) with ErrOutOfRange.
//  2. Walk edges in input order, keyed by keyOf.
//  3. First occurrence of a key appends a new slot (this fixes output order).
//  4. Repeated key on a weighted graph replaces the slot only when the new
//     weight is strictly smaller; on an unweighted graph it is dropped.
//
// The returned slice is freshly allocated; Weight is 1 on unweighted graphs.
// Normalize does not check weights; call Validate first for the full contract.
//
// Complexity: O(E) time, O(E) memory.
func Normalize(spec Spec) ([]Edge, error) {
	var (
		slot  = make(map[edgeKey]int, len(spec.RawEdges)) // key → index in out
		out   = make([]Edge, 0, len(spec.RawEdges))
		n     = spec.NodeCount
		w     float64
		e     RawEdge
		i, at int
		seen  bool
	)
	for i, e = range spec.RawEdges {
		// 1. Range check, reported against the raw index.
		if e.From < 0 || e.From >= n {
			return nil, newEdgeError(i, "from", e.From, ErrOutOfRange)
		}
		if e.To < 0 || e.To >= n {
			return nil, newEdgeError(i, "to", e.To, ErrOutOfRange)
		}

		// 2. Resolve the effective weight.
		w = 1
		if spec.Weighted && e.Weight != nil {
			w = *e.Weight
		}

		// 3. New key: append in first-seen order.
		k := keyOf(e.From, e.To, spec.Directed)
		if at, seen = slot[k]; !seen {
			slot[k] = len(out)
			out = append(out, Edge{From: e.From, To: e.To, Weight: w})
			continue
		}

		// 4. Duplicate: only a strictly lighter weighted edge wins.
		if spec.Weighted && w < out[at].Weight {
			out[at] = Edge{From: e.From, To: e.To, Weight: w}
		}
	}

	return out, nil
}
