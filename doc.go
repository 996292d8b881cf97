// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package reedsolomon implements Cauchy-matrix Reed-Solomon erasure codes
// over GF(2^8).
//
// Primitive Polynomial: x^8 + x^4 + x^3 + x^2 + 1 (0x11D, high bit implicit).
//
// Given originalCount equal-sized data blocks, Encode produces recoveryCount
// recovery blocks such that any originalCount of the originalCount+recoveryCount
// blocks (originals and recoveries mixed) suffice to reconstruct every
// original block. Decode performs that reconstruction in place.
//
// The package is a pure compute library: no network I/O, no wire framing,
// no logging. Callers own all block memory; the package only reads
// originals and writes into caller-supplied recovery/reconstruction
// buffers.
package reedsolomon
