package reedsolomon

// squareMatrix is a row-major m x m byte matrix, used only by tests as a
// cross-check for the LDU decomposition in decoder.go: invert an erasure
// submatrix via classical Gauss-Jordan elimination to confirm it is
// nonsingular. The inverse is not compared against the LDU solve's output.
type squareMatrix []byte

func newSquareMatrix(n int) squareMatrix { return make(squareMatrix, n*n) }

// invert returns the inverse of an n x n matrix m, or ErrZeroPivot if m is
// singular.
func (f *Field) invert(m squareMatrix, n int) (squareMatrix, error) {
	raw := newSquareMatrix(2 * n)
	for i := 0; i < n; i++ {
		copy(raw[2*i*n:2*i*n+n], m[i*n:i*n+n])
		raw[2*i*n+n+i] = 1
	}
	if err := f.gaussJordan(raw, n, 2*n); err != nil {
		return nil, err
	}
	return raw.right(n), nil
}

func (m squareMatrix) right(n int) squareMatrix {
	out := newSquareMatrix(n)
	for i := 0; i < n; i++ {
		copy(out[i*n:i*n+n], m[2*i*n+n:2*i*n+2*n])
	}
	return out
}

func (m squareMatrix) swapRows(i, j, cols int) {
	for c := 0; c < cols; c++ {
		m[i*cols+c], m[j*cols+c] = m[j*cols+c], m[i*cols+c]
	}
}

// gaussJordan reduces an n x (2n) augmented matrix to [I | inverse] in
// place, over this Field's GF(2^8) arithmetic.
func (f *Field) gaussJordan(m squareMatrix, rows, cols int) error {
	for r := 0; r < rows; r++ {
		if m[r*cols+r] == 0 {
			for below := r + 1; below < rows; below++ {
				if m[below*cols+r] != 0 {
					m.swapRows(r, below, cols)
					break
				}
			}
		}
		if m[r*cols+r] == 0 {
			return ErrZeroPivot
		}
		if m[r*cols+r] != 1 {
			scale := f.Inv(m[r*cols+r])
			for c := 0; c < cols; c++ {
				m[r*cols+c] = f.Mul(m[r*cols+c], scale)
			}
		}
		for below := r + 1; below < rows; below++ {
			scale := m[below*cols+r]
			if scale == 0 {
				continue
			}
			for c := 0; c < cols; c++ {
				m[below*cols+c] ^= f.Mul(scale, m[r*cols+c])
			}
		}
	}
	for d := 0; d < rows; d++ {
		for above := 0; above < d; above++ {
			scale := m[above*cols+d]
			if scale == 0 {
				continue
			}
			for c := 0; c < cols; c++ {
				m[above*cols+c] ^= f.Mul(scale, m[d*cols+c])
			}
		}
	}
	return nil
}
