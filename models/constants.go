package models

/* The general trend here is we prefix the type of the constant */

// ---------------------------

const (
	DistanceEuclidean   = "euclidean"
	DistanceManhattan   = "manhattan"
	DistanceCanberra    = "canberra"
	DistanceEarthMovers = "earthMovers"
)

// ---------------------------

// OptionType is the single named option the distance operation accepts. The
// name is matched case-insensitively, the value case-sensitively against the
// Distance* constants above.
const OptionType = "type"
