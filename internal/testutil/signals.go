package testutil

import (
	"math"
	"math/rand"
)

// GuardValue fills the padding around a Guarded window. Kernels must never
// write it, so any change shows an out-of-bounds store.
var GuardValue = math.Float32frombits(0x7fc0dead)

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float32, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float32()*2 - 1) * amplitude
	}
	return out
}

// Ramp returns start, start+step, start+2*step, ...
func Ramp(start, step float32, length int) []float32 {
	out := make([]float32, length)
	for i := range out {
		out[i] = start + step*float32(i)
	}
	return out
}

// Guarded allocates length elements surrounded by guard elements on each side,
// all set to GuardValue. It returns the full backing slice and the inner window.
// The window's capacity is clipped so appends cannot reach the trailing guard.
func Guarded(length, guard int) (full, window []float32) {
	full = make([]float32, length+2*guard)
	for i := range full {
		full[i] = GuardValue
	}
	return full, full[guard : guard+length : guard+length]
}

// GuardsIntact reports whether the guard elements of a Guarded buffer still
// hold GuardValue. It returns the first clobbered index into full, or -1.
func GuardsIntact(full []float32, guard int) int {
	want := math.Float32bits(GuardValue)
	for i := 0; i < guard; i++ {
		if math.Float32bits(full[i]) != want {
			return i
		}
		j := len(full) - 1 - i
		if math.Float32bits(full[j]) != want {
			return j
		}
	}
	return -1
}
