package reedsolomon

import (
	"bytes"
	"math/rand"
	"testing"
)

// roundTrip encodes random originals, drops the blocks at the given
// original indices, replaces them with the corresponding recovery blocks,
// decodes, and checks the reconstructed data matches the originals that
// were dropped.
func roundTrip(t *testing.T, p EncoderParams, dropped []int) {
	t.Helper()
	e := mustEncoder(t, p)

	originals := make([]Block, p.OriginalCount)
	want := make([][]byte, p.OriginalCount)
	for j := range originals {
		d := make([]byte, p.BlockBytes)
		rand.Read(d)
		want[j] = d
		originals[j] = Block{Index: j, Data: append([]byte{}, d...)}
	}
	recovery := make([][]byte, p.RecoveryCount)
	for i := range recovery {
		recovery[i] = make([]byte, p.BlockBytes)
	}
	if err := e.Encode(originals, recovery); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	dropSet := make(map[int]bool, len(dropped))
	for _, j := range dropped {
		dropSet[j] = true
	}
	if len(dropped) > p.RecoveryCount {
		t.Fatalf("test setup: dropping %d but only %d recoveries available", len(dropped), p.RecoveryCount)
	}

	blocks := make([]Block, 0, p.OriginalCount)
	for j, b := range originals {
		if !dropSet[j] {
			blocks = append(blocks, Block{Index: b.Index, Data: append([]byte{}, b.Data...)})
		}
	}
	for i := 0; i < len(dropped); i++ {
		blocks = append(blocks, Block{
			Index: p.OriginalCount + i,
			Data:  append([]byte{}, recovery[i]...),
		})
	}

	if err := Decode(p, blocks); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	got := make([][]byte, p.OriginalCount)
	for _, b := range blocks {
		if b.Index < p.OriginalCount {
			got[b.Index] = b.Data
		}
	}
	for j := range want {
		if !bytes.Equal(got[j], want[j]) {
			t.Fatalf("original %d = %X, want %X", j, got[j], want[j])
		}
	}
}

func TestDecodeScenarioOneSingleErasure(t *testing.T) {
	roundTrip(t, EncoderParams{OriginalCount: 3, RecoveryCount: 1, BlockBytes: 4}, []int{1})
}

func TestDecodeSingleOriginalSingleRecovery(t *testing.T) {
	roundTrip(t, EncoderParams{OriginalCount: 1, RecoveryCount: 1, BlockBytes: 8}, []int{0})
}

func TestDecodeMaxOriginalCount(t *testing.T) {
	roundTrip(t, EncoderParams{OriginalCount: 255, RecoveryCount: 1, BlockBytes: 3}, []int{200})
}

// TestDecodeMaxRecoveryCount covers k=1, r=255: losing the sole original
// must be recoverable from any single one of the 255 recovery blocks.
func TestDecodeMaxRecoveryCount(t *testing.T) {
	p := EncoderParams{OriginalCount: 1, RecoveryCount: 255, BlockBytes: 5}
	e := mustEncoder(t, p)
	data := []byte{1, 2, 3, 4, 5}
	recovery := make([][]byte, p.RecoveryCount)
	for i := range recovery {
		recovery[i] = make([]byte, p.BlockBytes)
	}
	if err := e.Encode([]Block{{Index: 0, Data: data}}, recovery); err != nil {
		t.Fatal(err)
	}
	for _, pick := range []int{0, 1, 254} {
		blocks := []Block{{Index: p.OriginalCount + pick, Data: append([]byte{}, recovery[pick]...)}}
		if err := Decode(p, blocks); err != nil {
			t.Fatalf("pick %d: decode: %v", pick, err)
		}
		if !bytes.Equal(blocks[0].Data, data) {
			t.Fatalf("pick %d: got %X, want %X", pick, blocks[0].Data, data)
		}
		if blocks[0].Index != 0 {
			t.Fatalf("pick %d: Index = %d, want 0", pick, blocks[0].Index)
		}
	}
}

func TestDecodeBlockBytesOne(t *testing.T) {
	roundTrip(t, EncoderParams{OriginalCount: 4, RecoveryCount: 2, BlockBytes: 1}, []int{0, 3})
}

func TestDecodeBlockBytesOneMiB(t *testing.T) {
	roundTrip(t, EncoderParams{OriginalCount: 3, RecoveryCount: 2, BlockBytes: 1 << 20}, []int{1})
}

// TestDecodeZeroRecoveryCountIsIdentity covers RecoveryCount=0: with no
// recovery blocks possible, every original must be present and Decode is
// a no-op identity.
func TestDecodeZeroRecoveryCountIsIdentity(t *testing.T) {
	p := EncoderParams{OriginalCount: 5, RecoveryCount: 0, BlockBytes: 8}
	blocks := make([]Block, p.OriginalCount)
	want := make([][]byte, p.OriginalCount)
	for j := range blocks {
		d := make([]byte, p.BlockBytes)
		rand.Read(d)
		want[j] = append([]byte{}, d...)
		blocks[j] = Block{Index: j, Data: d}
	}
	if err := Decode(p, blocks); err != nil {
		t.Fatal(err)
	}
	for j := range blocks {
		if blocks[j].Index != j {
			t.Fatalf("block %d Index = %d, want %d", j, blocks[j].Index, j)
		}
		if !bytes.Equal(blocks[j].Data, want[j]) {
			t.Fatalf("block %d mutated by identity decode", j)
		}
	}
}

// TestDecodeNoErasuresIsNoOp covers the no-erasures case with RecoveryCount
// nonzero: Solve must leave every block's Data untouched when nothing is
// missing.
func TestDecodeNoErasuresIsNoOp(t *testing.T) {
	p := EncoderParams{OriginalCount: 4, RecoveryCount: 2, BlockBytes: 6}
	blocks := make([]Block, p.OriginalCount)
	want := make([][]byte, p.OriginalCount)
	for j := range blocks {
		d := make([]byte, p.BlockBytes)
		rand.Read(d)
		want[j] = append([]byte{}, d...)
		blocks[j] = Block{Index: j, Data: d}
	}

	d, err := NewDecoder(p)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Initialize(blocks); err != nil {
		t.Fatal(err)
	}
	if err := d.Solve(); err != nil {
		t.Fatal(err)
	}
	if d.State() != stateSolved {
		t.Fatalf("state = %v, want solved", d.State())
	}
	for j := range blocks {
		if !bytes.Equal(blocks[j].Data, want[j]) {
			t.Fatalf("block %d mutated by no-op solve", j)
		}
	}
}

// TestDecodeGeneralMultipleErasures exercises solveGeneral's m>1 LDU path
// and cross-checks the erasure submatrix's invertibility via the
// Gauss-Jordan verifier in matrix.go, independent of the LDU solve path.
func TestDecodeGeneralMultipleErasures(t *testing.T) {
	p := EncoderParams{OriginalCount: 10, RecoveryCount: 6, BlockBytes: 20}
	dropped := []int{1, 4, 7}
	roundTrip(t, p, dropped)

	f := testField(t)
	m := len(dropped)
	rows := make([]int, m)
	for i := range rows {
		rows[i] = i
	}
	A := newSquareMatrix(m)
	for i, r := range rows {
		for k, c := range dropped {
			A[i*m+k] = f.cauchyCoeff(p, r, c)
		}
	}
	if _, err := f.invert(A, m); err != nil {
		t.Fatalf("erasure submatrix should be invertible via Gauss-Jordan: %v", err)
	}
}

func TestDecodeRejectsShortBlockList(t *testing.T) {
	p := EncoderParams{OriginalCount: 4, RecoveryCount: 2, BlockBytes: 4}
	blocks := []Block{
		{Index: 0, Data: make([]byte, 4)},
		{Index: 1, Data: make([]byte, 4)},
		{Index: 4, Data: make([]byte, 4)}, // only one recovery for two missing originals
	}
	d, err := NewDecoder(p)
	if err != nil {
		t.Fatal(err)
	}
	// blocks is short (3 instead of 4): exercises ErrMismatchBlockCount,
	// not the recovery/erasure-count check directly.
	if err := d.Initialize(blocks); err != ErrMismatchBlockCount {
		t.Fatalf("got %v, want ErrMismatchBlockCount", err)
	}
	if d.State() != stateFailed {
		t.Fatalf("state = %v, want failed", d.State())
	}
}

func TestDecodeRejectsCallOutOfOrder(t *testing.T) {
	p := EncoderParams{OriginalCount: 2, RecoveryCount: 1, BlockBytes: 4}
	d, err := NewDecoder(p)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Solve(); err != ErrDecoderNotInitialized {
		t.Fatalf("got %v, want ErrDecoderNotInitialized", err)
	}

	blocks := []Block{
		{Index: 0, Data: make([]byte, 4)},
		{Index: 1, Data: make([]byte, 4)},
	}
	if err := d.Initialize(blocks); err != nil {
		t.Fatal(err)
	}
	if err := d.Initialize(blocks); err != ErrDecoderNotFresh {
		t.Fatalf("got %v, want ErrDecoderNotFresh", err)
	}
}

// TestDecodeManyRandomPatterns logs the size of the erasure-pattern space
// covered, via the generalized binomial coefficient helper, alongside a
// sweep over many random erasure subsets of a mid-sized stripe.
func TestDecodeManyRandomPatterns(t *testing.T) {
	p := EncoderParams{OriginalCount: 16, RecoveryCount: 5, BlockBytes: 9}
	patterns := GeneralizedBinomial(float64(p.OriginalCount), float64(p.RecoveryCount))
	t.Logf("stripe has C(%d,%d) = %.0f distinct %d-erasure patterns", p.OriginalCount, p.RecoveryCount, patterns, p.RecoveryCount)

	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 20; trial++ {
		m := 1 + rng.Intn(p.RecoveryCount)
		perm := rng.Perm(p.OriginalCount)
		dropped := append([]int{}, perm[:m]...)
		roundTrip(t, p, dropped)
	}
}
