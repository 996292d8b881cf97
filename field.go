package reedsolomon

import "sync"

// polynomial is the primitive polynomial defining GF(2^8): x^8+x^4+x^3+x^2+1,
// with the x^8 term implicit (0x11D under that convention, 0x1D as the
// reduction constant used when doubling a field element).
const polynomial = 0x1D

// kernelTier selects the buffer-math kernel chosen at Field init, based on
// the CPU's capabilities. The tiers mirror the vector widths a real SIMD
// implementation would use (wide kernels process 16/32 bytes per table
// lookup instead of one), see field_kernel.go.
type kernelTier int

const (
	tierPortable kernelTier = iota
	tierSSSE3NEON
	tierAVX2
)

// Field owns the GF(2^8) tables used by every Encode/Decode call. It is
// built once by FieldInit and is read-only thereafter; any number of goroutines
// may share one Field concurrently.
type Field struct {
	exp [512*2 + 1]byte // doubled/extended exp table, see field_tables.go
	log [256]uint16     // log[0] is a sentinel, never read by mul/div

	mul [256 * 256]byte // mul[(y<<8)+x] = x*y
	div [256 * 256]byte // div[(y<<8)+x] = x/y, y != 0 required by caller
	inv [256]byte       // inv[0] = 0 by convention
	sqr [256]byte

	lowY  [256][16]byte // per-multiplier low-nibble product table
	highY [256][16]byte // per-multiplier high-nibble product table

	tier kernelTier
}

var (
	globalField     *Field
	globalFieldOnce sync.Once
	globalFieldErr  error
)

// FieldInit builds the process-wide Field exactly once. It is idempotent
// and safe to call from package init code or concurrently from multiple
// goroutines; only the first call does any work. Encode and Decode call it
// lazily, so most callers never need to call it directly.
func FieldInit() error {
	globalFieldOnce.Do(func() {
		f := &Field{tier: detectKernelTier()}
		f.explogInit()
		f.muldivInit()
		f.invInit()
		f.sqrInit()
		f.shuffleTablesInit()
		if !f.selfTest() {
			globalFieldErr = ErrFieldSelfTest
			return
		}
		globalField = f
	})
	return globalFieldErr
}

// sharedField returns the process-wide Field, initializing it on first use.
func sharedField() (*Field, error) {
	if err := FieldInit(); err != nil {
		return nil, err
	}
	return globalField, nil
}

// Add returns x XOR y, the field's addition (and subtraction).
func (f *Field) Add(x, y byte) byte { return x ^ y }

// Mul returns x*y using the precomputed 256x256 product table.
func (f *Field) Mul(x, y byte) byte { return f.mul[(int(y)<<8)+int(x)] }

// Div returns x/y. Behavior for y=0 is unspecified but never faults;
// callers must never divide by zero.
func (f *Field) Div(x, y byte) byte { return f.div[(int(y)<<8)+int(x)] }

// Inv returns the multiplicative inverse of x; Inv(0) == 0 by convention.
func (f *Field) Inv(x byte) byte { return f.inv[x] }

// Sqr returns x*x.
func (f *Field) Sqr(x byte) byte { return f.sqr[x] }

// gfMulSlow computes x*y by schoolbook GF(2^8) polynomial multiplication
// reduced modulo the primitive polynomial, without touching any table. It
// exists only to cross-check table generation in selfTest by computing the
// same product a different way and comparing.
func gfMulSlow(x, y byte) byte {
	var result byte
	a, b := x, y
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			result ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= polynomial
		}
		b >>= 1
	}
	return result
}

// selfTest cross-checks the generated tables against an independent
// computation for a fixed pattern of inputs. Any mismatch means table
// generation is broken and FieldInit must fail.
func (f *Field) selfTest() bool {
	samples := []struct{ x, y byte }{
		{0, 0}, {1, 1}, {1, 0}, {0, 1},
		{2, 2}, {3, 7}, {0xFF, 0xFE}, {0x1D, 0x03},
		{0x80, 0x80}, {0x53, 0xCA}, {1, 0xFF}, {0xFF, 1},
	}
	for _, s := range samples {
		if f.Mul(s.x, s.y) != gfMulSlow(s.x, s.y) {
			return false
		}
	}
	for x := 1; x < 256; x++ {
		if f.Mul(f.Inv(byte(x)), byte(x)) != 1 {
			return false
		}
		if f.Sqr(byte(x)) != f.Mul(byte(x), byte(x)) {
			return false
		}
	}
	return true
}
