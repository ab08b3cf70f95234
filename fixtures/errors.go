package fixtures

import "errors"

var (
	// ErrTooFewVertices is returned when a requested dimension is below
	// the generator's minimum (a path needs ≥2 vertices, a grid needs
	// ≥1 row and ≥1 column).
	ErrTooFewVertices = errors.New("fixtures: parameter too small")

	// ErrInvalidProbability is returned when RandomSparse is given a p
	// outside [0,1].
	ErrInvalidProbability = errors.New("fixtures: probability out of range")
)
