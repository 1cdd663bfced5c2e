package eval

import "errors"

// ErrInvalidConfig covers malformed construction-time options. It is raised
// once when an operation is built and never again.
var ErrInvalidConfig = errors.New("invalid configuration")

// ErrInvalidOperand covers call-time operand violations such as nil values,
// wrong types, wrong operand counts and vector length mismatches.
var ErrInvalidOperand = errors.New("invalid operand")
