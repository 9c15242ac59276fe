//go:build amd64 && !purego

package sse

import (
	"github.com/cwbudde/algo-vecadd/internal/cpu"
	"github.com/cwbudde/algo-vecadd/internal/vecadd/registry"
)

// init registers the SSE kernel with the vecadd registry.
//
// Priority: 10 (preferred over generic, below AVX)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse",
		SIMDLevel: cpu.SIMDSSE,
		Priority:  10,
		Lanes:     Lanes,
		AddBlock:  AddBlock,
	})
}
