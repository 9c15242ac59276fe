//go:build amd64 && !purego

package vecadd

// This file imports amd64-specific kernel packages to trigger
// their init() functions, which register kernels with the global registry.

import (
	// Generic kernel (pure Go fallback)
	_ "github.com/cwbudde/algo-vecadd/internal/vecadd/arch/generic"

	// AMD64 kernels
	_ "github.com/cwbudde/algo-vecadd/internal/vecadd/arch/amd64/avx"
	_ "github.com/cwbudde/algo-vecadd/internal/vecadd/arch/amd64/sse"
)
