//go:build amd64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on amd64 systems.
//
// Uses golang.org/x/sys/cpu which provides portable CPUID access.
// SSE is part of the x86-64 baseline, so HasSSE is always true here.
// cpu.X86.HasAVX already accounts for the OS saving YMM state (OSXSAVE/XGETBV).
func detectFeaturesImpl() Features {
	return Features{
		HasSSE:       true,
		HasAVX:       cpu.X86.HasAVX,
		Architecture: runtime.GOARCH,
	}
}
