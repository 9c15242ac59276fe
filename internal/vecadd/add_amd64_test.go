//go:build amd64 && !purego

package vecadd

import "testing"

func TestKernelsRegisteredAMD64(t *testing.T) {
	want := map[string]bool{Generic: false, SSE: false, AVX: false}
	for _, name := range Names() {
		want[name] = true
	}
	for name, found := range want {
		if !found {
			t.Errorf("%s kernel not registered", name)
		}
	}

	// SSE is part of the amd64 baseline.
	if _, lanes, ok := Kernel(SSE); !ok || lanes != 4 {
		t.Errorf("Kernel(sse) = lanes %d ok %v, want 4 true", lanes, ok)
	}
	if Lanes(AVX) != 8 {
		t.Errorf("Lanes(avx) = %d, want 8", Lanes(AVX))
	}
}
