package generic

import (
	"github.com/cwbudde/algo-vecadd/internal/cpu"
	"github.com/cwbudde/algo-vecadd/internal/vecadd/registry"
)

// init registers the scalar kernel with the vecadd registry.
//
// Priority: 0 (lowest - used only when no SIMD kernel is available
// or when ForceGeneric is enabled)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Lanes:     1,
		AddBlock:  AddBlock,
	})
}
