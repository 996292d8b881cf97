package reedsolomon

// EncoderParams fixes the three values that describe one stripe: how many
// original blocks, how many recovery blocks, and how large each block is.
type EncoderParams struct {
	OriginalCount int // 1..255
	RecoveryCount int // 0..255; 0 means Encode produces nothing and Decode is identity.
	BlockBytes    int // > 0
}

// Validate checks the bounds an EncoderParams must satisfy.
func (p EncoderParams) Validate() error {
	if p.OriginalCount < 1 || p.OriginalCount > 255 {
		return ErrInvalidOriginalCount
	}
	if p.RecoveryCount < 0 || p.RecoveryCount > 255 {
		return ErrInvalidRecoveryCount
	}
	if p.OriginalCount+p.RecoveryCount > 256 {
		return ErrTooManyShards
	}
	if p.BlockBytes <= 0 {
		return ErrInvalidBlockBytes
	}
	return nil
}

// cauchyY is the field element assigned to original index j. Fixed to j
// itself.
func cauchyY(j int) byte { return byte(j) }

// cauchyX is the field element assigned to recovery row i.
//
// An earlier assignment of X_i to a fixed offset above 128 collides with
// cauchyY whenever originalCount > 128 (e.g. k=255,r=1): Y ranges over
// almost the full byte range in that case and swallows any fixed offset.
// Any deterministic assignment disjoint from Y works, so this package
// instead reuses the block-index range already reserved for recoveries
// themselves:
//
//	X_i = originalCount + recoveryCount - 1 - i
//
// which lands in [originalCount, originalCount+recoveryCount), always
// disjoint from Y's [0, originalCount) for every valid EncoderParams. See
// DESIGN.md.
func cauchyX(p EncoderParams, i int) byte {
	return byte(p.OriginalCount + p.RecoveryCount - 1 - i)
}

// cauchyCoeff returns the (i,j) entry of the Cauchy generator matrix used
// by this package, column-normalized so that row 0 is all ones:
//
//	C[i][j] = 1/(X_i XOR Y_j)
//	Ĉ[i][j] = C[i][j] / C[0][j] = (X_0 XOR Y_j) / (X_i XOR Y_j)
//
// Column scaling by a nonzero constant preserves the invertibility of
// every square submatrix (it only multiplies each minor by a nonzero
// product of scale factors), so Ĉ keeps the MDS property while making the
// single-parity case (recovery row 0) a plain XOR of all originals.
func (f *Field) cauchyCoeff(p EncoderParams, i, j int) byte {
	x0, xi, yj := cauchyX(p, 0), cauchyX(p, i), cauchyY(j)
	return f.Div(x0^yj, xi^yj)
}
