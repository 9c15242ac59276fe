//go:build !purego && amd64

// Package avx holds the 256-bit add kernel: eight float32 lanes per VADDPS.
package avx

// Lanes is the number of float32 values in one YMM register.
const Lanes = 8

// AddBlock performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
// Uses AVX to process 8 float32 values at once; the len%8 trailing
// elements are added one at a time with VADDSS.
// Callers must check cpu.HasAVX() first.
func AddBlock(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecadd: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	addBlockAVX(dst, a, b)
}

// Assembly function declarations (implemented in add.s)

//go:noescape
func addBlockAVX(dst, a, b []float32)
