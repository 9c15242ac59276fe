//go:build amd64 && !purego

package avx

import (
	"github.com/cwbudde/algo-vecadd/internal/cpu"
	"github.com/cwbudde/algo-vecadd/internal/vecadd/registry"
)

// init registers the AVX kernel with the vecadd registry.
//
// AVX doubles the register width of SSE to 256 bits. Available on Intel
// Sandy Bridge (2011+) and AMD Bulldozer (2011+).
//
// Priority: 20 (high - preferred over SSE and generic when available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx",
		SIMDLevel: cpu.SIMDAVX,
		Priority:  20,
		Lanes:     Lanes,
		AddBlock:  AddBlock,
	})
}
