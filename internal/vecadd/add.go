package vecadd

import (
	"sync"

	"github.com/cwbudde/algo-vecadd/internal/cpu"
	"github.com/cwbudde/algo-vecadd/internal/vecadd/registry"
)

// Kernel names as registered by the arch packages.
const (
	Generic = "generic"
	SSE     = "sse"
	AVX     = "avx"
)

var (
	// Cached function pointer for the best add kernel (initialized once, used many times)
	addBlockImpl  func([]float32, []float32, []float32)
	selectedName  string
	selectedLanes int
	addInitOnce   sync.Once
)

// initAddOperation selects the best kernel for the detected CPU features and
// caches its function pointer for subsequent calls.
func initAddOperation() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("vecadd: no add kernel registered (missing generic fallback?)")
	}
	if entry.AddBlock == nil {
		panic("vecadd: selected kernel missing AddBlock")
	}
	addBlockImpl = entry.AddBlock
	selectedName = entry.Name
	selectedLanes = entry.Lanes
}

// AddBlock performs element-wise addition: dst[i] = a[i] + b[i].
//
// All slices must have equal length. Panics if lengths differ.
//
// The kernel is selected once, on the first call, from the CPU features:
//   - AVX on x86-64 CPUs with AVX support
//   - SSE on any other x86-64 CPU
//   - Generic pure Go loop otherwise
//
// The choice is not revisited: cpu.SetForcedFeatures only affects AddBlock
// if it is called before the first AddBlock or Selected call.
func AddBlock(dst, a, b []float32) {
	addInitOnce.Do(initAddOperation)
	addBlockImpl(dst, a, b)
}

// Kernel returns the add kernel registered under name together with its lane
// count. ok is false if no such kernel is linked into this build or the
// current CPU features (including any forced features) do not support it.
func Kernel(name string) (fn func(dst, a, b []float32), lanes int, ok bool) {
	entry := registry.Global.LookupName(name, cpu.DetectFeatures())
	if entry == nil || entry.AddBlock == nil {
		return nil, 0, false
	}
	return entry.AddBlock, entry.Lanes, true
}

// Selected returns the name and lane count of the kernel AddBlock uses.
func Selected() (name string, lanes int) {
	addInitOnce.Do(initAddOperation)
	return selectedName, selectedLanes
}

// Lanes returns the lane count of the kernel registered under name, whether
// or not the current CPU supports it. Returns 0 if no such kernel is linked.
func Lanes(name string) int {
	for _, e := range registry.Global.ListEntries() {
		if e.Name == name {
			return e.Lanes
		}
	}
	return 0
}

// Names lists the registered kernels, widest first.
func Names() []string {
	entries := registry.Global.ListEntries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
