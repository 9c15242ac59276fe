// Package arrayadd is the array-addition exercise for SIMD vectorization.
//
// Two input arrays X1 and X2 are filled with deterministic data, the scalar
// loop writes the reference sum into Y1, and a vector path (SSE with four
// float32 lanes, or AVX with eight) writes the same sum into Test2. The
// comparator then checks the two outputs element by element.
//
// The usual sequence is:
//
//	b := arrayadd.New(arrayadd.DefaultLength)
//	b.Initialize()
//	b.AddDefault()
//	b.AddAVX()
//	status := b.CompareOutput()
//
// # Compare versus CompareOutput
//
// Compare keeps the sequencing of the reference exercise: it recomputes the
// scalar sum into Test2 and only then checks Test2 against Y1, so it passes
// no matter what the vector path produced. This is a known defect in the
// reference and is kept on purpose. CompareOutput checks the vector result
// that is actually in Test2 and is what callers should use.
package arrayadd
