package analyzer

import (
	"context"
	"time"
)

// Stage names reported to Hooks and the debug log.
const (
	StageBuild         = "build"
	StageAdjacency     = "adjacency"
	StageDistances     = "distances"
	StageCycle         = "cycle"
	StageNegativeCycle = "negative_cycle"
	StageTopological   = "topological_sort"
	StageSpanningTree  = "spanning_tree"
	StageConnectivity  = "connectivity"
)

// Hooks receives engine events. Implementations must be safe for concurrent
// use when the engine runs WithParallel.
type Hooks interface {
	// OnAnalyzeStart is called once the spec has been accepted for analysis.
	OnAnalyzeStart(ctx context.Context, nodeCount, edgeCount int)

	// OnStageComplete is called after every stage, err being nil on success
	// and on an absent (but expected) result.
	OnStageComplete(ctx context.Context, stage string, duration time.Duration, err error)

	// OnAnalyzeComplete is called once per Analyze call.
	OnAnalyzeComplete(ctx context.Context, duration time.Duration, err error)
}

// NoopHooks is a no-op implementation of Hooks.
type NoopHooks struct{}

func (NoopHooks) OnAnalyzeStart(context.Context, int, int)                      {}
func (NoopHooks) OnStageComplete(context.Context, string, time.Duration, error) {}
func (NoopHooks) OnAnalyzeComplete(context.Context, time.Duration, error)       {}
