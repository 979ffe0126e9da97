// Package cluster implements the traffic-volume clustering preprocessor:
// reducing per-epoch volume vectors to num_clusters representatives via
// k-means or max-agglomerative clustering, using gonum.org/v1/gonum/floats
// for vector distance arithmetic.
package cluster

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/pathsel/pathselerr"
	"github.com/katalvlaran/pathsel/pptc"
)

// Method selects the clustering algorithm.
type Method int

const (
	MethodKMeans Method = iota
	MethodAgglomerative
)

func (m Method) String() string {
	switch m {
	case MethodKMeans:
		return "kmeans"
	case MethodAgglomerative:
		return "agg"
	default:
		return "unknown_cluster_method"
	}
}

// Config configures ClusterTCs following an Options/Default constructor
// pattern: one struct, a Default constructor, explicit seed for
// determinism.
type Config struct {
	NumClusters int
	Method      Method
	Seed        int64
}

// Default returns Config{NumClusters: 1, Method: MethodKMeans, Seed: 0}.
func Default() Config {
	return Config{NumClusters: 1, Method: MethodKMeans}
}

// ClusterTCs reduces each tc's VolFlows to a clustered representative
// vector and returns a new slice of TrafficClass with VolFlows replaced
// (inputs are not mutated). Unknown method returns ErrInvalidConfig.
func ClusterTCs(tcs []pptc.TrafficClass, cfg Config) ([]pptc.TrafficClass, error) {
	if len(tcs) == 0 {
		return nil, nil
	}

	points := make([][]float64, len(tcs))
	for i, tc := range tcs {
		points[i] = flattenEpochs(tc.VolFlows)
	}

	var assigned [][]float64
	var err error
	switch cfg.Method {
	case MethodKMeans:
		assigned, err = kmeansAssign(points, cfg.NumClusters, cfg.Seed)
	case MethodAgglomerative:
		assigned, err = aggAssign(points, cfg.NumClusters)
	default:
		return nil, pathselerr.ErrInvalidConfig
	}
	if err != nil {
		return nil, err
	}

	out := make([]pptc.TrafficClass, len(tcs))
	for i, tc := range tcs {
		out[i] = tc
		out[i].VolFlows = reshapeEpochs(assigned[i], len(tc.VolFlows))
	}

	return out, nil
}

func flattenEpochs(volFlows [][]float64) []float64 {
	if len(volFlows) == 0 {
		return nil
	}
	dims := len(volFlows[0])
	out := make([]float64, len(volFlows)*dims)
	for e, v := range volFlows {
		copy(out[e*dims:(e+1)*dims], v)
	}

	return out
}

func reshapeEpochs(flat []float64, numEpochs int) [][]float64 {
	if numEpochs == 0 || len(flat) == 0 {
		return nil
	}
	dims := len(flat) / numEpochs
	if dims == 0 {
		dims = 1
	}
	out := make([][]float64, numEpochs)
	for e := 0; e < numEpochs; e++ {
		start := e * dims
		end := start + dims
		if end > len(flat) {
			end = len(flat)
		}
		out[e] = append([]float64(nil), flat[start:end]...)
	}

	return out
}

// kmeansAssign fits NumClusters centers over the TC volume vectors via
// Lloyd's algorithm, then assigns TC i the center at position i directly.
// This direct assignment is only well-defined when num_clusters equals
// the traffic-class count; rather than silently indexing out of bounds
// or wrapping, it fails fast with ErrInvalidConfig otherwise (see
// DESIGN.md's open-question resolution for this case).
func kmeansAssign(points [][]float64, numClusters int, seed int64) ([][]float64, error) {
	if numClusters <= 0 || numClusters > len(points) {
		return nil, pathselerr.ErrInvalidConfig
	}
	if numClusters != len(points) {
		return nil, pathselerr.ErrInvalidConfig
	}

	centers := lloyd(points, numClusters, seed)

	out := make([][]float64, len(points))
	for i := range points {
		out[i] = centers[i]
	}

	return out, nil
}

// lloyd runs a fixed number of Lloyd iterations, seeding centers
// deterministically from the provided seed.
func lloyd(points [][]float64, k int, seed int64) [][]float64 {
	r := rand.New(rand.NewSource(seed + 1))
	dims := len(points[0])

	centers := make([][]float64, k)
	perm := r.Perm(len(points))
	for i := 0; i < k; i++ {
		centers[i] = append([]float64(nil), points[perm[i%len(perm)]]...)
	}

	const iterations = 20
	assignment := make([]int, len(points))
	for iter := 0; iter < iterations; iter++ {
		for i, p := range points {
			best, bestDist := 0, math.Inf(1)
			for c, center := range centers {
				d := floats.Distance(p, center, 2)
				if d < bestDist {
					bestDist = d
					best = c
				}
			}
			assignment[i] = best
		}

		sums := make([][]float64, k)
		counts := make([]int, k)
		for i := range sums {
			sums[i] = make([]float64, dims)
		}
		for i, p := range points {
			c := assignment[i]
			floats.Add(sums[c], p)
			counts[c]++
		}
		for c := range centers {
			if counts[c] == 0 {
				continue
			}
			for d := 0; d < dims; d++ {
				centers[c][d] = sums[c][d] / float64(counts[c])
			}
		}
	}

	return centers
}

// aggAssign performs agglomerative clustering down to numClusters buckets,
// merging the two buckets with the nearest centroids at each step, then
// returns, per TC, the element-wise max vector
// of its own bucket: TC i receives the representative vector of the
// bucket it was merged into (see DESIGN.md for the resolution used when
// num_clusters differs from the traffic-class count).
func aggAssign(points [][]float64, numClusters int) ([][]float64, error) {
	if numClusters <= 0 || numClusters > len(points) {
		return nil, pathselerr.ErrInvalidConfig
	}

	buckets := make([][]int, len(points))
	for i := range buckets {
		buckets[i] = []int{i}
	}

	for len(buckets) > numClusters {
		bi, bj := nearestBuckets(points, buckets)
		merged := append(append([]int(nil), buckets[bi]...), buckets[bj]...)
		sort.Ints(merged)

		next := make([][]int, 0, len(buckets)-1)
		for idx, b := range buckets {
			if idx == bi || idx == bj {
				continue
			}
			next = append(next, b)
		}
		next = append(next, merged)
		buckets = next
	}

	dims := len(points[0])
	bucketVec := make([][]float64, len(buckets))
	for bIdx, b := range buckets {
		v := make([]float64, dims)
		for _, pi := range b {
			for d := 0; d < dims; d++ {
				if points[pi][d] > v[d] {
					v[d] = points[pi][d]
				}
			}
		}
		bucketVec[bIdx] = v
	}

	out := make([][]float64, len(points))
	for bIdx, b := range buckets {
		for _, pi := range b {
			out[pi] = bucketVec[bIdx]
		}
	}

	return out, nil
}

// nearestBuckets finds the two buckets whose centroids are closest
// (Euclidean), used as the merge criterion each agglomeration step.
func nearestBuckets(points [][]float64, buckets [][]int) (int, int) {
	dims := len(points[0])
	centroids := make([][]float64, len(buckets))
	for i, b := range buckets {
		c := make([]float64, dims)
		for _, pi := range b {
			floats.Add(c, points[pi])
		}
		for d := range c {
			c[d] /= float64(len(b))
		}
		centroids[i] = c
	}

	bestI, bestJ, bestDist := 0, 1, math.Inf(1)
	for i := 0; i < len(centroids); i++ {
		for j := i + 1; j < len(centroids); j++ {
			d := floats.Distance(centroids[i], centroids[j], 2)
			if d < bestDist {
				bestDist = d
				bestI, bestJ = i, j
			}
		}
	}

	return bestI, bestJ
}
