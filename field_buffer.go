package reedsolomon

import "github.com/templexxx/xorsimd"

// AddMem computes x[i] ^= y[i] for i in [0,n). In-place XOR accumulation
// into an existing buffer; xorsimd's Encode contract assumes a fresh,
// disjoint destination, so this in-place shape stays a plain Go loop
// rather than going through that dependency.
func (f *Field) AddMem(x, y []byte) {
	n := len(x)
	for i := 0; i < n; i++ {
		x[i] ^= y[i]
	}
}

// Add2Mem computes z[i] ^= x[i] ^ y[i] for i in [0,n). Also in-place
// accumulation into z, same reasoning as AddMem.
func (f *Field) Add2Mem(z, x, y []byte) {
	n := len(z)
	for i := 0; i < n; i++ {
		z[i] ^= x[i] ^ y[i]
	}
}

// AddsetMem computes z[i] = x[i] ^ y[i] for i in [0,n), writing a fresh
// destination. This is the fresh-destination XOR shape xorsimd documents
// as safe, so it is wired to xorsimd instead of a hand loop.
func (f *Field) AddsetMem(z, x, y []byte) error {
	xorsimd.Encode(z, [][]byte{x, y})
	return nil
}

// MulMem computes z[i] = x[i] * y for all i, y a scalar constant,
// dispatched to the kernel tier chosen at Field init.
func (f *Field) MulMem(z, x []byte, y byte) {
	chunked(z, x, f.mulVect, y)
}

// MuladdMem computes z[i] ^= x[i] * y for all i.
func (f *Field) MuladdMem(z []byte, y byte, x []byte) {
	chunked(z, x, f.mulVectXOR, y)
}

// DivMem computes z[i] = x[i] / y for all i. y == 1 short-circuits to a
// plain copy.
func (f *Field) DivMem(z, x []byte, y byte) {
	if y == 1 {
		copy(z, x)
		return
	}
	f.MulMem(z, x, f.Inv(y))
}

// chunked splits a bulk buffer op into cache-friendly pieces, sized to fit
// comfortably within L1, then applies op to each piece.
func chunked(z, x []byte, op func(c byte, in, out []byte), c byte) {
	n := len(x)
	chunk := cacheChunkBytes()
	if chunk <= 0 || chunk > n {
		chunk = n
	}
	for start := 0; start < n; {
		end := start + chunk
		if end > n {
			end = n
		}
		op(c, x[start:end], z[start:end])
		start = end
	}
}
