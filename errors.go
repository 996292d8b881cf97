package reedsolomon

import "errors"

// Parameter errors: counts out of range, sizes inconsistent with the
// caller-supplied arrays.
var (
	ErrInvalidOriginalCount  = errors.New("reedsolomon: original count out of [1,255] range")
	ErrInvalidRecoveryCount  = errors.New("reedsolomon: recovery count out of [0,255] range")
	ErrTooManyShards         = errors.New("reedsolomon: original+recovery count exceeds 256")
	ErrInvalidBlockBytes     = errors.New("reedsolomon: block bytes must be > 0")
	ErrMismatchBlockCount    = errors.New("reedsolomon: wrong number of blocks supplied")
	ErrMismatchBlockBytes    = errors.New("reedsolomon: block has wrong length")
	ErrRecoveryCountMismatch = errors.New("reedsolomon: erasure count does not match supplied recovery count")
)

// Input errors: bad or duplicate block indices.
var (
	ErrDuplicateIndex  = errors.New("reedsolomon: duplicate block index")
	ErrIndexOutOfRange = errors.New("reedsolomon: block index out of range")
)

// Init errors: the Field failed its self-test and must not be used.
var ErrFieldSelfTest = errors.New("reedsolomon: GF(2^8) field self-test failed")

// Internal errors: postcondition violations that indicate a library bug,
// not a caller mistake. A correctly-built Cauchy submatrix never produces
// a zero pivot, so seeing this means the tables or matrix construction are
// wrong.
var ErrZeroPivot = errors.New("reedsolomon: zero pivot in Cauchy LDU decomposition")

// ErrInternal covers other postcondition violations: invariants the
// partition step should already guarantee, checked again defensively
// before the solve.
var ErrInternal = errors.New("reedsolomon: internal invariant violated")

// Decoder lifecycle errors: calling Initialize/Solve out of order.
var (
	ErrDecoderNotFresh       = errors.New("reedsolomon: decoder already initialized")
	ErrDecoderNotInitialized = errors.New("reedsolomon: decoder not initialized")
)

// decoderState is the Decoder's lifecycle: Fresh -> Initialized -> Solved |
// Failed.
type decoderState int

const (
	stateFresh decoderState = iota
	stateInitialized
	stateSolved
	stateFailed
)
