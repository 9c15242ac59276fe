//go:build amd64 && !purego

package avx

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-vecadd/internal/cpu"
	"github.com/cwbudde/algo-vecadd/internal/testutil"
)

func requireAVX(tb testing.TB) {
	tb.Helper()
	if !cpu.HasAVX() {
		tb.Skip("AVX not supported on this CPU")
	}
}

// TestAddBlock_AVX tests the AVX kernel directly against the scalar loop,
// covering lengths below, at and around multiples of the vector width.
func TestAddBlock_AVX(t *testing.T) {
	requireAVX(t)

	sizes := []int{0, 1, 2, 3, 4, 7, 8, 9, 10, 12, 15, 16, 17, 23, 24, 25, 63, 64, 65, 100, 1000, 1023}

	for _, n := range sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			a := testutil.DeterministicNoise(int64(n), 100, n)
			b := testutil.DeterministicNoise(int64(n)+7, 100, n)
			expected := make([]float32, n)
			for i := range expected {
				expected[i] = a[i] + b[i]
			}

			const guard = Lanes * 2
			full, dst := testutil.Guarded(n, guard)

			AddBlock(dst, a, b)

			testutil.RequireSliceEqual(t, dst, expected)
			if idx := testutil.GuardsIntact(full, guard); idx != -1 {
				t.Fatalf("store outside [0,%d) at backing index %d", n, idx)
			}
		})
	}
}

// TestAddBlock_AVX_TenElements runs one full vector plus a two-element tail.
func TestAddBlock_AVX_TenElements(t *testing.T) {
	requireAVX(t)

	a := make([]float32, 10)
	b := make([]float32, 10)
	for j := range a {
		a[j] = float32(j%7) + 0.11
		b[j] = float32(j%13) + 0.1234
	}
	full, dst := testutil.Guarded(10, Lanes)

	AddBlock(dst, a, b)

	for j := range dst {
		if want := a[j] + b[j]; dst[j] != want {
			t.Errorf("dst[%d] = %v, want %v", j, dst[j], want)
		}
	}
	if idx := testutil.GuardsIntact(full, Lanes); idx != -1 {
		t.Errorf("guard clobbered at %d", idx)
	}
}

// TestAddBlock_AVX_Unaligned offsets every operand so loads straddle 32-byte boundaries.
func TestAddBlock_AVX_Unaligned(t *testing.T) {
	requireAVX(t)

	const n = 77
	for off := 1; off < Lanes; off++ {
		t.Run(fmt.Sprintf("off=%d", off), func(t *testing.T) {
			a := testutil.Ramp(1, 0.5, n+off)[off:]
			b := testutil.Ramp(-3, 0.25, n+off)[off:]
			dst := make([]float32, n+off)[off:]

			AddBlock(dst, a, b)

			for i := range dst {
				if want := a[i] + b[i]; dst[i] != want {
					t.Fatalf("dst[%d] = %v, want %v", i, dst[i], want)
				}
			}
		})
	}
}

func TestAddBlock_AVX_Panic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("AddBlock should panic on mismatched lengths")
		}
	}()
	AddBlock(make([]float32, 9), make([]float32, 8), make([]float32, 8))
}

// BenchmarkAddBlock_AVX_Direct benchmarks the AVX kernel directly
func BenchmarkAddBlock_AVX_Direct(b *testing.B) {
	requireAVX(b)

	sizes := []int{16, 64, 256, 1024, 4096}

	for _, n := range sizes {
		b.Run(sizeStr(n), func(b *testing.B) {
			dst := make([]float32, n)
			a := make([]float32, n)
			src := make([]float32, n)

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				AddBlock(dst, a, src)
			}

			bytes := int64(n) * 4 * 3 // 3 slices, 4 bytes per float32
			b.SetBytes(bytes)
		})
	}
}

func sizeStr(n int) string {
	if n >= 1024 && n%1024 == 0 {
		return fmt.Sprintf("%dK", n/1024)
	}
	return fmt.Sprintf("%d", n)
}
