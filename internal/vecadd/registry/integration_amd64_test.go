//go:build amd64 && !purego

package registry_test

import (
	"testing"

	"github.com/cwbudde/algo-vecadd/internal/cpu"
	"github.com/cwbudde/algo-vecadd/internal/vecadd/registry"

	// Import amd64-specific kernels
	_ "github.com/cwbudde/algo-vecadd/internal/vecadd/arch/amd64/avx"
	_ "github.com/cwbudde/algo-vecadd/internal/vecadd/arch/amd64/sse"
	_ "github.com/cwbudde/algo-vecadd/internal/vecadd/arch/generic"
)

// TestRegistryIntegration_AMD64 verifies kernels register on amd64.
func TestRegistryIntegration_AMD64(t *testing.T) {
	entries := registry.Global.ListEntries()
	if len(entries) == 0 {
		t.Fatal("no kernels registered - init() functions not running")
	}

	t.Logf("Registered %d kernels on amd64:", len(entries))
	for _, e := range entries {
		t.Logf("  - %s (priority %d, level %s, lanes %d)", e.Name, e.Priority, e.SIMDLevel, e.Lanes)
	}

	lanes := make(map[string]int)
	for _, e := range entries {
		if e.AddBlock == nil {
			t.Errorf("%s kernel missing AddBlock", e.Name)
		}
		lanes[e.Name] = e.Lanes
	}

	want := map[string]int{"generic": 1, "sse": 4, "avx": 8}
	for name, n := range want {
		if got, ok := lanes[name]; !ok {
			t.Errorf("%s kernel not registered", name)
		} else if got != n {
			t.Errorf("%s kernel lanes = %d, want %d", name, got, n)
		}
	}

	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		t.Fatal("Lookup returned nil")
	}
	t.Logf("Selected kernel for current CPU: %s", entry.Name)
}
