// Package cpu provides CPU feature detection for add kernel selection.
//
// This package detects the x86 vector extensions (SSE, AVX) available
// on the current processor and caches the results for efficient querying.
//
// Detection is performed lazily on the first call to DetectFeatures() and the
// results are cached for subsequent calls using sync.Once for thread-safety.
package cpu

import (
	"sync"
)

// SIMDLevel represents a SIMD instruction set extension level.
// Higher numeric values indicate wider or more capable vector units.
type SIMDLevel int

const (
	// SIMDNone indicates no SIMD optimization (pure Go scalar loop).
	SIMDNone SIMDLevel = iota

	// SIMDSSE indicates x86 SSE: 128-bit registers, 4 float32 lanes.
	SIMDSSE

	// SIMDAVX indicates x86-64 AVX: 256-bit registers, 8 float32 lanes.
	SIMDAVX
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE:
		return "SSE"
	case SIMDAVX:
		return "AVX"
	default:
		return "Unknown"
	}
}

// Features describes CPU capabilities relevant to add kernel selection.
type Features struct {
	// x86/amd64 SIMD features
	HasSSE bool // Streaming SIMD Extensions (packed single precision)
	HasAVX bool // Advanced Vector Extensions, with OS support for YMM state

	// Control flags
	ForceGeneric bool // Disable all SIMD kernels (for testing/debugging)

	// Runtime information
	Architecture string // runtime.GOARCH (e.g., "amd64", "arm64")
}

var (
	// detectedFeatures holds the cached CPU features detected on this system.
	detectedFeatures Features

	// detectOnce ensures feature detection runs exactly once, thread-safely.
	detectOnce sync.Once

	// detectMutex serializes access to detectOnce/detectedFeatures.
	detectMutex sync.Mutex

	// forcedFeatures allows overriding actual hardware detection for testing.
	forcedFeatures *Features

	// forcedMutex protects forcedFeatures from concurrent access during testing.
	forcedMutex sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
//
// Detection is performed once on the first call and cached for subsequent calls.
// This function is thread-safe and can be called concurrently from multiple goroutines.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// HasSSE returns true if the CPU supports SSE packed single-precision instructions.
func HasSSE() bool {
	return DetectFeatures().HasSSE
}

// HasAVX returns true if the CPU and OS support AVX instructions.
func HasAVX() bool {
	return DetectFeatures().HasAVX
}

// SetForcedFeatures overrides CPU feature detection with the specified features.
// This is intended for testing and for forcing the scalar path from the command line.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports returns true if the given CPU features support the specified SIMD level.
// This function is used by the kernel registry to determine implementation compatibility.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE:
		return features.HasSSE
	case SIMDAVX:
		return features.HasAVX
	default:
		return false
	}
}
