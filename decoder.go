package reedsolomon

// Decoder reconstructs missing originals from a mix of surviving
// originals and recoveries. Its lifecycle is Fresh -> Initialized ->
// Solved | Failed: Initialize partitions and validates without mutating
// any buffer; Solve performs the in-place reconstruction and is terminal
// either way.
type Decoder struct {
	params EncoderParams
	field  *Field
	state  decoderState

	blocks      []Block // aliases the caller's slice; mutated in place by Solve.
	originalPos []int   // originalPos[j] = position in blocks holding original j, or -1 if erased.
	recoveryPos []int   // positions in blocks holding a recovery, in encounter order.
	erasures    []int   // original indices missing, sorted ascending.
}

// NewDecoder validates params and builds a fresh Decoder for one stripe
// shape, ensuring the process-wide Field is initialized.
func NewDecoder(params EncoderParams) (*Decoder, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	f, err := sharedField()
	if err != nil {
		return nil, err
	}
	return &Decoder{params: params, field: f, state: stateFresh}, nil
}

// State reports the decoder's current lifecycle state.
func (d *Decoder) State() decoderState { return d.state }

// Initialize partitions blocks into survivors and erasures without
// touching any buffer. blocks must contain exactly OriginalCount entries
// in total (originals and recoveries combined).
func (d *Decoder) Initialize(blocks []Block) error {
	if d.state != stateFresh {
		return ErrDecoderNotFresh
	}
	p := d.params
	if len(blocks) != p.OriginalCount {
		d.state = stateFailed
		return ErrMismatchBlockCount
	}

	total := p.OriginalCount + p.RecoveryCount
	seen := make([]bool, total)
	originalPos := make([]int, p.OriginalCount)
	for j := range originalPos {
		originalPos[j] = -1
	}
	var recoveryPos []int

	for pos, b := range blocks {
		if b.Index < 0 || b.Index >= total {
			d.state = stateFailed
			return ErrIndexOutOfRange
		}
		if seen[b.Index] {
			d.state = stateFailed
			return ErrDuplicateIndex
		}
		seen[b.Index] = true
		if len(b.Data) != p.BlockBytes {
			d.state = stateFailed
			return ErrMismatchBlockBytes
		}
		if b.Index < p.OriginalCount {
			originalPos[b.Index] = pos
		} else {
			recoveryPos = append(recoveryPos, pos)
		}
	}

	var erasures []int
	for j := 0; j < p.OriginalCount; j++ {
		if originalPos[j] == -1 {
			erasures = append(erasures, j)
		}
	}
	if len(erasures) != len(recoveryPos) {
		d.state = stateFailed
		return ErrRecoveryCountMismatch
	}

	d.blocks = blocks
	d.originalPos = originalPos
	d.recoveryPos = recoveryPos
	d.erasures = erasures
	d.state = stateInitialized
	return nil
}

// Solve performs the reconstruction, rewriting every recovery block in
// d.blocks to hold its reconstructed original and updating its Index.
// It is a no-op if Initialize found no erasures.
func (d *Decoder) Solve() error {
	if d.state != stateInitialized {
		return ErrDecoderNotInitialized
	}
	m := len(d.erasures)
	if m == 0 {
		d.state = stateSolved
		return nil
	}
	if len(dedup(append([]int{}, d.erasures...))) != m {
		d.state = stateFailed
		return ErrInternal
	}

	var err error
	if m == 1 {
		err = d.solveM1()
	} else {
		err = d.solveGeneral()
	}
	if err != nil {
		d.state = stateFailed
		return err
	}
	d.state = stateSolved
	return nil
}

// solveM1 is the single-erasure, single-recovery fast path, the dominant
// deployment case in practice. r==0 degenerates to a plain XOR because row
// 0 of the Cauchy matrix is all ones.
func (d *Decoder) solveM1() error {
	p := d.params
	f := d.field
	e := d.erasures[0]
	recPos := d.recoveryPos[0]
	acc := d.blocks[recPos].Data
	r := d.blocks[recPos].Index - p.OriginalCount

	if r == 0 {
		for j := 0; j < p.OriginalCount; j++ {
			if j == e {
				continue
			}
			f.AddMem(acc, d.blocks[d.originalPos[j]].Data)
		}
		d.blocks[recPos].Index = e
		return nil
	}

	for j := 0; j < p.OriginalCount; j++ {
		if j == e {
			continue
		}
		c := f.cauchyCoeff(p, r, j)
		f.MuladdMem(acc, c, d.blocks[d.originalPos[j]].Data)
	}
	ce := f.cauchyCoeff(p, r, e)
	f.DivMem(acc, acc, ce)
	d.blocks[recPos].Index = e
	return nil
}

// solveGeneral handles m>1 erasures via the closed-form-adjacent Cauchy
// LDU decomposition: build the m x m erasure submatrix, fold survivor
// contributions into the recovery buffers (now the RHS), factor A=LDU
// without pivoting (guaranteed safe, see ldu), and solve in place by
// forward/diagonal/back substitution.
func (d *Decoder) solveGeneral() error {
	p := d.params
	f := d.field
	m := len(d.erasures)
	erasures := d.erasures

	rhs := make([][]byte, m)
	row := make([]int, m)
	for i, pos := range d.recoveryPos {
		rhs[i] = d.blocks[pos].Data
		row[i] = d.blocks[pos].Index - p.OriginalCount
	}

	for j := 0; j < p.OriginalCount; j++ {
		pos := d.originalPos[j]
		if pos == -1 {
			continue
		}
		oj := d.blocks[pos].Data
		for i := 0; i < m; i++ {
			c := f.cauchyCoeff(p, row[i], j)
			f.MuladdMem(rhs[i], c, oj)
		}
	}

	A := make([]byte, m*m)
	for i := 0; i < m; i++ {
		for k := 0; k < m; k++ {
			A[i*m+k] = f.cauchyCoeff(p, row[i], erasures[k])
		}
	}

	L := make([]byte, m*m)
	D := make([]byte, m)
	U := make([]byte, m*m)
	if err := ldu(f, A, m, L, D, U); err != nil {
		return err
	}

	for i := 0; i < m; i++ {
		for j := 0; j < i; j++ {
			if l := L[i*m+j]; l != 0 {
				f.MuladdMem(rhs[i], l, rhs[j])
			}
		}
	}
	for i := 0; i < m; i++ {
		f.DivMem(rhs[i], rhs[i], D[i])
	}
	for i := m - 1; i >= 0; i-- {
		for j := i + 1; j < m; j++ {
			if u := U[i*m+j]; u != 0 {
				f.MuladdMem(rhs[i], u, rhs[j])
			}
		}
	}

	for i, pos := range d.recoveryPos {
		d.blocks[pos].Index = erasures[i]
	}
	return nil
}

// ldu factors the m x m matrix A (row-major) as A = L*D*U, L unit lower
// triangular and U unit upper triangular (both stored with their implicit
// diagonal of 1s omitted), D the diagonal of pivots. No pivoting: every
// leading principal submatrix of a Cauchy matrix is itself Cauchy, hence
// invertible, so no pivot is ever zero for a correctly-built erasure
// submatrix. A is overwritten with intermediate Schur complements.
func ldu(f *Field, A []byte, m int, L, D, U []byte) error {
	for k := 0; k < m; k++ {
		pivot := A[k*m+k]
		if pivot == 0 {
			return ErrZeroPivot
		}
		D[k] = pivot
		invPivot := f.Inv(pivot)

		for i := k + 1; i < m; i++ {
			L[i*m+k] = f.Mul(A[i*m+k], invPivot)
		}
		for j := k + 1; j < m; j++ {
			U[k*m+j] = f.Mul(invPivot, A[k*m+j])
		}
		for i := k + 1; i < m; i++ {
			lik := L[i*m+k]
			if lik == 0 {
				continue
			}
			for j := k + 1; j < m; j++ {
				A[i*m+j] ^= f.Mul(lik, A[k*m+j])
			}
		}
	}
	return nil
}

// Decode is a convenience entry point that runs a Decoder through
// Initialize and Solve in one call.
func Decode(params EncoderParams, blocks []Block) error {
	d, err := NewDecoder(params)
	if err != nil {
		return err
	}
	if err := d.Initialize(blocks); err != nil {
		return err
	}
	return d.Solve()
}
