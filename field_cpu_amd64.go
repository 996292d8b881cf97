package reedsolomon

import "github.com/templexxx/cpu"

// detectKernelTier probes the running CPU's capabilities once, at Field
// init, and picks the widest buffer-math kernel it supports.
func detectKernelTier() kernelTier {
	switch {
	case cpu.X86.HasAVX2:
		return tierAVX2
	case cpu.X86.HasSSSE3:
		return tierSSSE3NEON
	default:
		return tierPortable
	}
}

// cacheChunkBytes sizes bulk-op chunks to roughly half the L1 data cache,
// so a chunk's data and the next chunk's prefetch don't thrash L1
// together.
func cacheChunkBytes() int {
	l1d := cpu.X86.Cache.L1D
	if l1d <= 0 {
		l1d = 32 * 1024
	}
	return l1d / 2
}
