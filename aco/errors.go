package aco

import "errors"

// ErrConfiguration is the umbrella sentinel for every construction-time
// rejection. Concrete causes below are always returned wrapped in it, so
// errors.Is(err, ErrConfiguration) and errors.Is(err, ErrDecayRange) both hold.
var ErrConfiguration = errors.New("aco: invalid configuration")

// Configuration causes.
var (
	// ErrEmptyMatrix is returned for a nil or zero-sized distance matrix.
	ErrEmptyMatrix = errors.New("aco: empty distance matrix")

	// ErrNonSquare is returned when the distance matrix is not n×n.
	ErrNonSquare = errors.New("aco: distance matrix is not square")

	// ErrNegativeDistance is returned when any distance is < 0.
	ErrNegativeDistance = errors.New("aco: negative distance")

	// ErrNonFiniteDistance is returned for NaN or ±Inf distances.
	// Unreachable pairs must be encoded as a large finite sentinel instead.
	ErrNonFiniteDistance = errors.New("aco: non-finite distance")

	// ErrDistanceOverflow is returned when some tour length could exceed
	// the float64 range even though every single entry is finite.
	ErrDistanceOverflow = errors.New("aco: tour length overflows float64")

	// ErrAntCount is returned when Ants < 1.
	ErrAntCount = errors.New("aco: ant count must be >= 1")

	// ErrEliteCount is returned when Elite is outside [0, Ants].
	ErrEliteCount = errors.New("aco: elite count must be in [0, ants]")

	// ErrIterationCount is returned when Iterations < 1.
	ErrIterationCount = errors.New("aco: iteration count must be >= 1")

	// ErrDecayRange is returned when Decay is outside the open interval (0,1).
	ErrDecayRange = errors.New("aco: decay must be in (0,1)")

	// ErrExponent is returned when Alpha or Beta is negative or non-finite.
	ErrExponent = errors.New("aco: alpha and beta must be finite and >= 0")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("aco: invalid option supplied")
)

// ErrAborted wraps the cause of a run that stopped before its iteration
// budget was exhausted (context cancellation, hook error, internal fault).
var ErrAborted = errors.New("aco: run aborted")

// errNoCandidate marks a construction step that found no unvisited vertex.
// It can only surface through a broken invariant and aborts the run.
var errNoCandidate = errors.New("aco: no unvisited vertex left to choose")
