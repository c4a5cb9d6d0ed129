// Package tgif implements the Tiny GIF (TGIF) codec: an RGB565, single-image,
// LZW-compressed raster format whose decoder dictionary is bounded by a
// declared SRAM budget embedded in the container header.
//
// The package mirrors the structure of the reference C implementation
// (urjaman/project-tinygif): a bit-exact container (header.go), a packed
// variable-width bit stream (bitstream.go), the encoder/decoder hash table
// and scratch dictionary (dict.go), and the two LZW state machines
// (encoder.go, decoder.go) that must agree on code-width escalation timing
// bit for bit.
package tgif

import "fmt"

// LZMaxCode is the largest representable code (10-bit cap).
const LZMaxCode = 1023

// sentinel values for code-like fields that are conceptually "no code yet".
// The reference C uses out-of-range magic integers (LZ_MAX_CODE+1..+3) for
// this since its codes are unsigned; Go's signed int lets -1 do the same
// job more plainly.
const noSuchCode = -1

// bitSize returns the smallest number of bits b such that 1<<b > n,
// clamped to the 10-bit code space. Matches BitSize() in tegif_lib.c /
// tdgif_lib.c.
func bitSize(n int) uint {
	var b uint
	for b = 1; b < 10; b++ {
		if (1 << b) > n {
			break
		}
	}
	return b
}

func errTooMany(what string, n, max int) error {
	return fmt.Errorf("tgif: %s count %d exceeds maximum %d", what, n, max)
}
