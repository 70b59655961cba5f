package builder

// Method names prefix constructor errors.
const (
	MethodPath              = "Path"
	MethodCycle             = "Cycle"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodRandomSparse      = "RandomSparse"
)

// Parameter minima.
const (
	MinPathNodes     = 2
	MinCycleNodes    = 3
	MinStarNodes     = 2
	MinWheelNodes    = 4
	MinCompleteNodes = 1
	MinPartitionSize = 1
	MinGridDim       = 1
	MinRandomNodes   = 1
)

// Probability bounds for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
