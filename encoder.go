package reedsolomon

// Block is one data or recovery block: its bytes, plus its index in
// [0, originalCount+recoveryCount). Indices below originalCount are
// originals; indices at or above originalCount are recoveries. Ownership
// of Data stays with the caller throughout a call.
type Block struct {
	Index int
	Data  []byte
}

// Encoder produces recovery blocks for one EncoderParams shape: validate
// once at construction, then run cheap per-call Encode/Update calls
// against a shared Field.
type Encoder struct {
	params EncoderParams
	field  *Field
}

// NewEncoder validates params and builds an Encoder for one stripe shape.
// It also ensures the process-wide Field is initialized.
func NewEncoder(params EncoderParams) (*Encoder, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	f, err := sharedField()
	if err != nil {
		return nil, err
	}
	return &Encoder{params: params, field: f}, nil
}

// checkOriginals validates that originals contains exactly OriginalCount
// blocks, each with a distinct index in [0, OriginalCount), and that every
// block's Data is BlockBytes long.
func (e *Encoder) checkOriginals(originals []Block) error {
	p := e.params
	if len(originals) != p.OriginalCount {
		return ErrMismatchBlockCount
	}
	seen := make([]bool, p.OriginalCount)
	for _, b := range originals {
		if b.Index < 0 || b.Index >= p.OriginalCount {
			return ErrIndexOutOfRange
		}
		if seen[b.Index] {
			return ErrDuplicateIndex
		}
		seen[b.Index] = true
		if len(b.Data) != p.BlockBytes {
			return ErrMismatchBlockBytes
		}
	}
	return nil
}

// Encode fills recoveryOut with RecoveryCount contiguous blocks of
// BlockBytes bytes, the k-th one corresponding to index
// OriginalCount+k. originals may be supplied in any order; Encoder places
// them by Index internally.
//
// Algorithm: recovery 0's coefficients are all 1 by the Cauchy matrix's
// column normalization (cauchyCoeff), so it is computed as a plain XOR of
// every original — the cheap path for the common single-parity
// deployment. Recovery k>=1 is a scaled multiply-accumulate: MulMem by
// O_0's coefficient, then MuladdMem for every other original.
func (e *Encoder) Encode(originals []Block, recoveryOut [][]byte) error {
	if err := e.checkOriginals(originals); err != nil {
		return err
	}
	p := e.params
	if len(recoveryOut) != p.RecoveryCount {
		return ErrMismatchBlockCount
	}
	ordered := make([][]byte, p.OriginalCount)
	for _, b := range originals {
		ordered[b.Index] = b.Data
	}

	f := e.field
	for k := 0; k < p.RecoveryCount; k++ {
		out := recoveryOut[k]
		if len(out) != p.BlockBytes {
			return ErrMismatchBlockBytes
		}
		if k == 0 {
			copy(out, ordered[0])
			for j := 1; j < p.OriginalCount; j++ {
				f.AddMem(out, ordered[j])
			}
			continue
		}
		c0 := f.cauchyCoeff(p, k, 0)
		f.MulMem(out, ordered[0], c0)
		for j := 1; j < p.OriginalCount; j++ {
			cj := f.cauchyCoeff(p, k, j)
			f.MuladdMem(out, cj, ordered[j])
		}
	}
	return nil
}

// Update recomputes recovery blocks after a single original block changes,
// without re-reading the other originals. It reuses exactly the same
// Cauchy coefficients as Encode.
//
// recoveries must hold the current RecoveryCount recovery blocks for this
// stripe; they are updated in place to reflect newData replacing oldData
// at original index row.
func (e *Encoder) Update(row int, oldData, newData []byte, recoveries [][]byte) error {
	p := e.params
	if row < 0 || row >= p.OriginalCount {
		return ErrIndexOutOfRange
	}
	if len(oldData) != p.BlockBytes || len(newData) != p.BlockBytes {
		return ErrMismatchBlockBytes
	}
	if len(recoveries) != p.RecoveryCount {
		return ErrMismatchBlockCount
	}

	f := e.field
	delta := make([]byte, p.BlockBytes)
	if err := f.AddsetMem(delta, oldData, newData); err != nil {
		return err
	}

	for k := 0; k < p.RecoveryCount; k++ {
		if len(recoveries[k]) != p.BlockBytes {
			return ErrMismatchBlockBytes
		}
		if k == 0 {
			f.AddMem(recoveries[k], delta)
			continue
		}
		c := f.cauchyCoeff(p, k, row)
		f.MuladdMem(recoveries[k], c, delta)
	}
	return nil
}
