// Package city — dense distance-matrix construction.
//
// The solver ranks routes by summing matrix entries, so the pairwise
// distances are materialized once per run instead of recomputing the
// metric inside every evaluation.
//
// Shape guarantees (relied upon by ga/):
//   - square n×n, zero diagonal, symmetric, all entries finite and ≥ 0.
package city

// DistanceMatrix builds the dense n×n matrix of pairwise Euclidean
// distances for the given cities. The result is symmetric with a zero
// diagonal; only the upper triangle is computed and mirrored.
//
// Contract:
//   - cities must be non-empty; otherwise ErrNoCities.
//
// Complexity: O(n²) time, O(n²) space.
func DistanceMatrix(cities []City) ([][]float64, error) {
	var n = len(cities)
	if n == 0 {
		return nil, ErrNoCities
	}

	// Single backing allocation keeps rows contiguous in memory.
	backing := make([]float64, n*n)
	dist := make([][]float64, n)

	var (
		i int
		j int
		d float64
	)
	for i = 0; i < n; i++ {
		dist[i] = backing[i*n : (i+1)*n]
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = Dist(cities[i], cities[j])
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	return dist, nil
}
