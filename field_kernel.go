package reedsolomon

// mulVect and mulVectXOR dispatch the two buffer-multiply primitives every
// kernel tier reduces to: "out[i] = c*in[i]" and "out[i] ^= c*in[i]". Two
// shapes are implemented: a scalar byte-by-byte table lookup (used below
// vector width, or on the portable tier) and a wide per-multiplier
// shuffle-table lookup (used by the accelerated tiers).
//
// A real SIMD kernel would run the wide path as hand-written AVX2/SSSE3
// assembly calling into vector shuffle instructions. wideMul/wideMulXOR
// below implement the identical algorithm in portable Go instead: split
// each byte into nibbles, look up both nibble products in lowY/highY, XOR
// them together. It is the same computation a vector kernel performs
// lane-by-lane; only the vector instructions are missing, not the
// algorithm. See DESIGN.md.
const wideUnit = 16

func scalarMul(t *[256]byte, in, out []byte) {
	for i, v := range in {
		out[i] = t[v]
	}
}

func scalarMulXOR(t *[256]byte, in, out []byte) {
	for i, v := range in {
		out[i] ^= t[v]
	}
}

func wideMul(low, high *[16]byte, in, out []byte) {
	for i, b := range in {
		out[i] = low[b&0x0F] ^ high[(b>>4)&0x0F]
	}
}

func wideMulXOR(low, high *[16]byte, in, out []byte) {
	for i, b := range in {
		out[i] ^= low[b&0x0F] ^ high[(b>>4)&0x0F]
	}
}

// mulVect dispatches to the kernel tier chosen at Field init.
func (f *Field) mulVect(c byte, in, out []byte) {
	t := &f.mul
	switch f.tier {
	case tierAVX2, tierSSSE3NEON:
		if len(in) >= wideUnit {
			low, high := &f.lowY[c], &f.highY[c]
			wideMul(low, high, in, out)
			return
		}
		fallthrough
	default:
		scalarMulFromColumn(t, c, in, out)
	}
}

func (f *Field) mulVectXOR(c byte, in, out []byte) {
	t := &f.mul
	switch f.tier {
	case tierAVX2, tierSSSE3NEON:
		if len(in) >= wideUnit {
			low, high := &f.lowY[c], &f.highY[c]
			wideMulXOR(low, high, in, out)
			return
		}
		fallthrough
	default:
		scalarMulXORFromColumn(t, c, in, out)
	}
}

// scalarMulFromColumn/scalarMulXORFromColumn index into the flat mul
// table's c-th column.
func scalarMulFromColumn(t *[256 * 256]byte, c byte, in, out []byte) {
	col := t[int(c)<<8 : (int(c)<<8)+256]
	for i, v := range in {
		out[i] = col[v]
	}
}

func scalarMulXORFromColumn(t *[256 * 256]byte, c byte, in, out []byte) {
	col := t[int(c)<<8 : (int(c)<<8)+256]
	for i, v := range in {
		out[i] ^= col[v]
	}
}
