package arrayadd

import (
	"math"

	"github.com/cwbudde/algo-vecadd/internal/vecadd/arch/generic"
	"github.com/cwbudde/algo-vecmath"
)

// Epsilon is the relative tolerance used by Equal.
const Epsilon = 0.01

// Equal reports whether a and b agree to within Epsilon relative to b.
// When b is zero the tolerance is absolute. NaN is never equal to anything.
func Equal(a, b float32) bool {
	if a == b {
		return true
	}
	diff := math.Abs(float64(a) - float64(b))
	if b == 0 {
		return diff < Epsilon
	}
	return diff/math.Abs(float64(b)) < Epsilon
}

// Compare recomputes the scalar sum into Test2 and then checks it against Y1,
// returning StatusMismatch at the first element that is not Equal.
//
// Because Test2 is overwritten first, whatever a vector path stored there is
// never examined; Compare only fails if Y1 itself is wrong. Use
// CompareOutput to check a vector result.
func (b *Buffers) Compare() Status {
	generic.AddBlock(b.Test2, b.X1, b.X2)
	return b.CompareOutput()
}

// CompareOutput checks Test2 against Y1 as they are, returning
// StatusMismatch at the first element that is not Equal.
func (b *Buffers) CompareOutput() Status {
	if _, found := b.FirstMismatch(); found {
		return StatusMismatch
	}
	return StatusOK
}

// FirstMismatch returns the lowest index j where Y1[j] and Test2[j] are not
// Equal.
func (b *Buffers) FirstMismatch() (int, bool) {
	for j := range b.Y1 {
		if !Equal(b.Y1[j], b.Test2[j]) {
			return j, true
		}
	}
	return 0, false
}

// Report summarizes how far the vector output is from the reference.
type Report struct {
	Length int

	// FirstMismatch is the lowest index failing Equal, or -1.
	FirstMismatch int

	// MaxAbsDiff is max |Y1[j] - Test2[j]|.
	MaxAbsDiff float64

	// MaxRoundingError is max |Test2[j] - (X1[j] + X2[j])| with the sum
	// taken in float64, i.e. the float32 rounding of the vector path.
	MaxRoundingError float64
}

// Diagnose compares Test2 against Y1 and against the float64 sum of the
// inputs without modifying any buffer. It allocates scratch per call and is
// meant for reporting, not for timed loops.
func (b *Buffers) Diagnose() Report {
	n := b.Len()
	r := Report{Length: n, FirstMismatch: -1}
	if j, found := b.FirstMismatch(); found {
		r.FirstMismatch = j
	}
	if n == 0 {
		return r
	}

	x1 := widen(b.X1)
	x2 := widen(b.X2)
	y1 := widen(b.Y1)
	negOut := make([]float64, n)
	vecmath.ScaleBlock(negOut, widen(b.Test2), -1)

	diff := make([]float64, n)
	vecmath.AddBlock(diff, y1, negOut)
	r.MaxAbsDiff = vecmath.MaxAbs(diff)

	exact := make([]float64, n)
	vecmath.AddBlock(exact, x1, x2)
	vecmath.AddBlock(diff, exact, negOut)
	r.MaxRoundingError = vecmath.MaxAbs(diff)

	return r
}

func widen(src []float32) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = float64(v)
	}
	return out
}
