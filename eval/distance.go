package eval

import (
	"fmt"
	"strings"

	"github.com/pointset/distmat/distance"
	"github.com/pointset/distmat/models"
	"gonum.org/v1/gonum/mat"
)

// ---------------------------

// Option is a single named construction-time option as handed over by the
// host expression pipeline.
type Option struct {
	Name  string
	Value string
}

// ---------------------------

// DistanceOperation computes vector-vector distances or pairwise distance
// matrices with a metric fixed at construction. It holds no other state, so a
// single instance is safe to share across goroutines.
type DistanceOperation struct {
	metric string
	distFn distance.DistFunc
}

// NewDistanceOperation resolves the metric from the given options. With no
// options the metric defaults to euclidean. At most one option is accepted:
// its name must be 'type' (case-insensitive) and its value one of the four
// metric names (case-sensitive). Anything else wraps ErrInvalidConfig.
func NewDistanceOperation(opts ...Option) (*DistanceOperation, error) {
	metric := models.DistanceEuclidean
	if len(opts) > 0 {
		if len(opts) > 1 {
			return nil, fmt.Errorf("%w: distance expects only the single named option '%s'", ErrInvalidConfig, models.OptionType)
		}
		opt := opts[0]
		if !strings.EqualFold(opt.Name, models.OptionType) {
			return nil, fmt.Errorf("%w: distance expects only the single named option '%s'", ErrInvalidConfig, models.OptionType)
		}
		metric = strings.TrimSpace(opt.Value)
	}
	distFn, err := distance.GetDistanceFn(metric)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	return &DistanceOperation{metric: metric, distFn: distFn}, nil
}

// Metric returns the resolved metric name.
func (op *DistanceOperation) Metric() string {
	return op.metric
}

// ---------------------------

// Evaluate dispatches on operand count. Two operands must both be numeric
// vectors and produce a scalar float64. A single operand must be a matrix and
// produces the pairwise distance matrix over its columns. Any other call
// shape wraps ErrInvalidOperand.
func (op *DistanceOperation) Evaluate(values ...any) (any, error) {
	switch len(values) {
	case 2:
		if values[0] == nil {
			return nil, fmt.Errorf("%w: null found for the first value", ErrInvalidOperand)
		}
		if values[1] == nil {
			return nil, fmt.Errorf("%w: null found for the second value", ErrInvalidOperand)
		}
		first, err := toVector(values[0], "first")
		if err != nil {
			return nil, err
		}
		second, err := toVector(values[1], "second")
		if err != nil {
			return nil, err
		}
		return op.vectorDistance(first, second)
	case 1:
		m, ok := toMatrix(values[0])
		if !ok {
			return nil, fmt.Errorf("%w: distance operates on either two numeric vectors or a single matrix", ErrInvalidOperand)
		}
		return op.pairwiseDistance(m)
	default:
		return nil, fmt.Errorf("%w: distance operates on either two numeric vectors or a single matrix", ErrInvalidOperand)
	}
}

func toVector(value any, side string) (models.Vector, error) {
	switch v := value.(type) {
	case nil:
		return nil, fmt.Errorf("%w: null found for the %s value", ErrInvalidOperand, side)
	case models.Vector:
		return v, nil
	case []float64:
		return v, nil
	default:
		return nil, fmt.Errorf("%w: found type %T for the %s value, expecting a list of numbers", ErrInvalidOperand, value, side)
	}
}

func toMatrix(value any) (models.Matrix, bool) {
	switch v := value.(type) {
	case models.Matrix:
		return v, true
	case [][]float64:
		return v, true
	default:
		return nil, false
	}
}

// ---------------------------

func (op *DistanceOperation) vectorDistance(x, y models.Vector) (any, error) {
	if op.distFn == nil {
		return nil, nil
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: vector length mismatch %d vs %d", ErrInvalidOperand, len(x), len(y))
	}
	return op.distFn(x, y), nil
}

// pairwiseDistance measures the columns of the input matrix against each
// other. The matrix is transposed first, so a rows x cols input yields a
// cols x cols output. The input is never mutated.
func (op *DistanceOperation) pairwiseDistance(m models.Matrix) (any, error) {
	if op.distFn == nil {
		return nil, nil
	}
	if !m.IsRectangular() {
		return nil, fmt.Errorf("%w: matrix rows have unequal lengths", ErrInvalidOperand)
	}
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return models.Matrix{}, nil
	}
	flat := make([]float64, 0, rows*cols)
	for _, row := range m {
		flat = append(flat, row...)
	}
	transposed := mat.NewDense(rows, cols, flat).T()
	points := make([][]float64, cols)
	for i := range points {
		points[i] = mat.Row(nil, i, transposed)
	}
	result := make(models.Matrix, cols)
	for i := range points {
		result[i] = make([]float64, cols)
		for j := range points {
			result[i][j] = op.distFn(points[i], points[j])
		}
	}
	return result, nil
}
