// Package registry provides the implementation registry for float32 add kernels.
//
// The registry-based dispatch system allows multiple kernel variants
// (generic, SSE, AVX) to coexist. Callers either take the best kernel for the
// current CPU or ask for a specific one by name, which is how the exercise
// runs the 128-bit and 256-bit paths side by side.
//
// Architecture-specific kernels register themselves via init() functions.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecadd/internal/cpu"
)

// OpEntry represents a registered add kernel.
type OpEntry struct {
	// Name is a human-readable identifier for this kernel (e.g., "sse", "avx").
	Name string

	// SIMDLevel indicates the SIMD instruction set required for this kernel.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible kernels exist.
	// Higher priority kernels are preferred. Suggested priorities:
	//   - Generic (SIMDNone): 0
	//   - SSE: 10
	//   - AVX: 20
	Priority int

	// Lanes is the number of float32 elements processed per vector instruction.
	Lanes int

	// AddBlock performs element-wise addition: dst[i] = a[i] + b[i].
	AddBlock func(dst, a, b []float32)
}

// OpRegistry manages the registration and lookup of add kernels.
//
// Kernels register themselves via init() functions. At runtime, Lookup()
// selects the highest-priority kernel compatible with the current CPU.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by the vecadd package.
var Global = &OpRegistry{}

// Register adds a kernel to the registry.
//
// This function is typically called from init() functions in architecture-specific
// kernel packages. It is safe to call concurrently, but all registrations
// should complete before the first call to Lookup().
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best kernel for the given CPU features.
//
// Returns the highest-priority entry compatible with the CPU, or nil if none
// is compatible (which should never happen if the generic kernel is registered).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// LookupName returns the kernel registered under name, provided the CPU
// features support it. Returns nil if the name is unknown or unsupported.
func (r *OpRegistry) LookupName(name string, features cpu.Features) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if entry.Name == name && cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

func (r *OpRegistry) ensureSorted() {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Simple insertion sort (registry holds three entries at most)
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries, sorted by priority.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
