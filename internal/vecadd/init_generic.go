//go:build purego || !amd64

package vecadd

// This file imports the generic kernel for purego builds and non-x86 architectures.

import (
	// Generic kernel (pure Go fallback)
	_ "github.com/cwbudde/algo-vecadd/internal/vecadd/arch/generic"
)
