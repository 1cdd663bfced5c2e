package distance

import (
	"fmt"

	"github.com/pointset/distmat/models"
)

// DistFunc computes the distance between two equal-length vectors. Length
// validation is the caller's job, the functions themselves assume len(x) ==
// len(y) just like the upstream metrics they implement.
type DistFunc func(x, y []float64) float64

// GetDistanceFn returns the distance function by name. The metric set is
// closed, anything outside the four known names is an error.
func GetDistanceFn(name string) (DistFunc, error) {
	switch name {
	case models.DistanceEuclidean:
		return euclideanDistance, nil
	case models.DistanceManhattan:
		return manhattanDistance, nil
	case models.DistanceCanberra:
		return canberraDistance, nil
	case models.DistanceEarthMovers:
		return earthMoversDistance, nil
	default:
		return nil, fmt.Errorf("unknown distance function: %s", name)
	}
}
