//go:build !purego && amd64

// Package sse holds the 128-bit add kernel: four float32 lanes per ADDPS.
package sse

// Lanes is the number of float32 values in one XMM register.
const Lanes = 4

// AddBlock performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
// Uses SSE to process 4 float32 values at once; the len%4 trailing
// elements are added one at a time with ADDSS.
func AddBlock(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecadd: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	addBlockSSE(dst, a, b)
}

// Assembly function declarations (implemented in add.s)

//go:noescape
func addBlockSSE(dst, a, b []float32)
