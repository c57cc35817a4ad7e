package algorithms

// Community is a group of vertices sharing a membership label.
type Community struct {
	ID       int
	Vertices []int
	Size     int
}

// CommunityDetectionResult summarizes a membership vector.
type CommunityDetectionResult struct {
	Communities []*Community
	Membership  []int   // vertex -> community ID
	Quality     float64 // objective value reported by the algorithm, if any
}

// LeidenOptions tunes the resolution-parameterized partitioner.
type LeidenOptions struct {
	// Beta is the randomness of the refinement step; smaller is greedier.
	Beta float64
	// Iterations is the number of full Leiden passes. A negative value repeats
	// passes until the membership stops changing.
	Iterations int
	// StartFromMembership uses the incoming membership as the initial partition
	// instead of singletons.
	StartFromMembership bool
}

// DefaultLeidenOptions returns the options used by the community benchmark.
func DefaultLeidenOptions() LeidenOptions {
	return LeidenOptions{Beta: 0.01, Iterations: 1}
}

// LeidenResult reports the outcome of a Leiden run.
type LeidenResult struct {
	Clusters int
	Quality  float64
}
