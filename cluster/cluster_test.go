package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathsel/pathselerr"
	"github.com/katalvlaran/pathsel/pptc"
)

func tcWithVolume(id pptc.TCID, vol []float64) pptc.TrafficClass {
	return pptc.TrafficClass{ID: id, VolFlows: [][]float64{vol}}
}

// TestClusterAggMaxPerBucket covers 3 TCs with volume vectors [1,1],
// [10,10], [1,1], method=agg, num_clusters=2: two buckets form, with
// per-bucket element-wise max [10,10] and [1,1].
func TestClusterAggMaxPerBucket(t *testing.T) {
	tcs := []pptc.TrafficClass{
		tcWithVolume(1, []float64{1, 1}),
		tcWithVolume(2, []float64{10, 10}),
		tcWithVolume(3, []float64{1, 1}),
	}

	out, err := ClusterTCs(tcs, Config{NumClusters: 2, Method: MethodAgglomerative})
	require.NoError(t, err)

	assert.Equal(t, []float64{10, 10}, out[1].VolFlows[0])
	assert.Equal(t, []float64{1, 1}, out[0].VolFlows[0])
	assert.Equal(t, []float64{1, 1}, out[2].VolFlows[0])
}

func TestClusterKMeansRequiresMatchingClusterCount(t *testing.T) {
	tcs := []pptc.TrafficClass{
		tcWithVolume(1, []float64{1, 1}),
		tcWithVolume(2, []float64{10, 10}),
	}

	_, err := ClusterTCs(tcs, Config{NumClusters: 1, Method: MethodKMeans})
	assert.ErrorIs(t, err, pathselerr.ErrInvalidConfig)
}

func TestClusterKMeansMatchingCount(t *testing.T) {
	tcs := []pptc.TrafficClass{
		tcWithVolume(1, []float64{0, 0}),
		tcWithVolume(2, []float64{100, 100}),
	}

	out, err := ClusterTCs(tcs, Config{NumClusters: 2, Method: MethodKMeans, Seed: 3})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestClusterUnknownMethod(t *testing.T) {
	tcs := []pptc.TrafficClass{tcWithVolume(1, []float64{1})}
	_, err := ClusterTCs(tcs, Config{NumClusters: 1, Method: Method(99)})
	assert.ErrorIs(t, err, pathselerr.ErrInvalidConfig)
}

func TestClusterEmptyInput(t *testing.T) {
	out, err := ClusterTCs(nil, Default())
	assert.NoError(t, err)
	assert.Nil(t, out)
}

func TestMethodString(t *testing.T) {
	assert.Equal(t, "kmeans", MethodKMeans.String())
	assert.Equal(t, "agg", MethodAgglomerative.String())
	assert.Equal(t, "unknown_cluster_method", Method(99).String())
}
