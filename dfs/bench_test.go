package dfs_test

import (
	"testing"

	"github.com/ani18605/GRAPH-ANALYZER/dfs"
)

// BenchmarkConnectivity_Chain10000 measures the low-link walk on a long path.
func BenchmarkConnectivity_Chain10000(b *testing.B) {
	g := build(b, 10000, false, path(10000)...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Connectivity(g)
	}
}

// BenchmarkHasCycle_Chain10000 measures cycle detection on a long path.
func BenchmarkHasCycle_Chain10000(b *testing.B) {
	g := build(b, 10000, true, path(10000)...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.HasCycle(g)
	}
}
