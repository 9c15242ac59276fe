package arrayadd

import (
	"github.com/cwbudde/algo-vecadd/internal/vecadd"
	"github.com/cwbudde/algo-vecadd/internal/vecadd/arch/generic"
)

const (
	// DefaultLength is the array length M used by the exercise harness.
	DefaultLength = 1024

	// OffsetX1 is added to j%7 when filling X1.
	OffsetX1 float32 = 0.11

	// OffsetX2 is added to j%13 when filling X2.
	OffsetX2 float32 = 0.1234
)

// Buffers holds the four exercise arrays. All four have the same length and
// share one contiguous allocation; each view is capacity-capped so it can
// never spill into its neighbour.
type Buffers struct {
	X1, X2 []float32 // inputs, written only by Initialize
	Y1     []float32 // scalar reference output
	Test2  []float32 // vector path output
}

// New allocates zeroed buffers of length m. Panics if m is negative.
func New(m int) *Buffers {
	if m < 0 {
		panic("arrayadd: negative length")
	}
	block := make([]float32, 4*m)
	return &Buffers{
		X1:    block[0*m : 1*m : 1*m],
		X2:    block[1*m : 2*m : 2*m],
		Y1:    block[2*m : 3*m : 3*m],
		Test2: block[3*m : 4*m : 4*m],
	}
}

// Len returns the array length M.
func (b *Buffers) Len() int {
	return len(b.X1)
}

// Initialize fills X1[j] = j%7 + 0.11 and X2[j] = j%13 + 0.1234 and zeroes
// both outputs. It must be called before any of the Add methods.
func (b *Buffers) Initialize() {
	for j := range b.X1 {
		b.Y1[j] = 0
		b.Test2[j] = 0
		b.X1[j] = float32(j%7) + OffsetX1
		b.X2[j] = float32(j%13) + OffsetX2
	}
}

// AddDefault computes the scalar reference Y1[j] = X1[j] + X2[j].
// It always returns StatusOK.
func (b *Buffers) AddDefault() Status {
	generic.AddBlock(b.Y1, b.X1, b.X2)
	return StatusOK
}

// AddSSE computes Test2[j] = X1[j] + X2[j] four lanes at a time.
func (b *Buffers) AddSSE() Status {
	return b.AddWith(vecadd.SSE)
}

// AddAVX computes Test2[j] = X1[j] + X2[j] eight lanes at a time.
func (b *Buffers) AddAVX() Status {
	return b.AddWith(vecadd.AVX)
}

// AddAuto computes Test2[j] = X1[j] + X2[j] with the widest kernel the CPU
// supports. The kernel is picked on the first call in the process.
func (b *Buffers) AddAuto() Status {
	vecadd.AddBlock(b.Test2, b.X1, b.X2)
	return StatusOK
}

// AddWith computes Test2[j] = X1[j] + X2[j] with the named kernel
// ("generic", "sse" or "avx"). Returns StatusUnsupported, leaving Test2
// untouched, if the kernel is not available.
func (b *Buffers) AddWith(kernel string) Status {
	fn, _, ok := vecadd.Kernel(kernel)
	if !ok {
		return StatusUnsupported
	}
	fn(b.Test2, b.X1, b.X2)
	return StatusOK
}
