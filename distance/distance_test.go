package distance

import (
	"math"
	"testing"

	"github.com/pointset/distmat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vectorTable = []struct {
	name            string
	x               []float64
	y               []float64
	wantEuclidean   float64
	wantManhattan   float64
	wantCanberra    float64
	wantEarthMovers float64
}{
	{"Empty", []float64{}, []float64{}, 0, 0, 0, 0},
	{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0, 0, 0, 0},
	{"Same", []float64{1, 2, 3}, []float64{1, 2, 3}, 0, 0, 0, 0},
	{"Two", []float64{1, 2, 3}, []float64{4, 6, 8}, math.Sqrt(50), 12, 3.0/5 + 4.0/8 + 5.0/11, 3 + 7 + 12},
	{"Negative", []float64{-1, -2}, []float64{-4, -6}, 5, 7, 3.0/5 + 4.0/8, 3 + 7},
	{"ZeroPair", []float64{0, 1}, []float64{0, 1}, 0, 0, 0, 0},
}

func TestEuclidean(t *testing.T) {
	for _, tt := range vectorTable {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantEuclidean, euclideanDistance(tt.x, tt.y), 1e-12)
			assert.InDelta(t, tt.wantEuclidean, euclideanDistance(tt.y, tt.x), 1e-12)
		})
	}
}

func TestManhattan(t *testing.T) {
	for _, tt := range vectorTable {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantManhattan, manhattanDistance(tt.x, tt.y))
		})
	}
}

// Direct summation reference for manhattan across a few lengths.
func TestManhattanReference(t *testing.T) {
	for _, n := range []int{0, 1, 5, 100} {
		x := make([]float64, n)
		y := make([]float64, n)
		var want float64
		for i := 0; i < n; i++ {
			x[i] = float64(i)
			y[i] = float64(2 * i % 7)
			want += math.Abs(x[i] - y[i])
		}
		assert.Equal(t, want, manhattanDistance(x, y))
	}
}

func TestCanberra(t *testing.T) {
	for _, tt := range vectorTable {
		t.Run(tt.name, func(t *testing.T) {
			got := canberraDistance(tt.x, tt.y)
			assert.False(t, math.IsNaN(got))
			assert.InDelta(t, tt.wantCanberra, got, 1e-12)
		})
	}
}

func TestEarthMovers(t *testing.T) {
	for _, tt := range vectorTable {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantEarthMovers, earthMoversDistance(tt.x, tt.y), 1e-12)
		})
	}
}

func TestGetDistanceFn(t *testing.T) {
	for _, name := range []string{
		models.DistanceEuclidean,
		models.DistanceManhattan,
		models.DistanceCanberra,
		models.DistanceEarthMovers,
	} {
		fn, err := GetDistanceFn(name)
		require.NoError(t, err)
		require.NotNil(t, fn)
	}
	// Value match is case-sensitive.
	_, err := GetDistanceFn("Euclidean")
	assert.Error(t, err)
	_, err = GetDistanceFn("chebyshev")
	assert.Error(t, err)
}
