package registry

import (
	"testing"

	"github.com/cwbudde/algo-vecadd/internal/cpu"
)

func newTestRegistry() *OpRegistry {
	reg := &OpRegistry{}

	// Register in non-priority order to exercise sorting
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0, Lanes: 1})
	reg.Register(OpEntry{Name: "avx", SIMDLevel: cpu.SIMDAVX, Priority: 20, Lanes: 8})
	reg.Register(OpEntry{Name: "sse", SIMDLevel: cpu.SIMDSSE, Priority: 10, Lanes: 4})

	return reg
}

func TestOpRegistry_Register(t *testing.T) {
	reg := newTestRegistry()

	entries := reg.ListEntries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	want := []string{"avx", "sse", "generic"}
	for i, e := range entries {
		if e.Name != want[i] {
			t.Errorf("entries[%d] = %s, want %s", i, e.Name, want[i])
		}
	}
}

func TestOpRegistry_Lookup_Priority(t *testing.T) {
	reg := newTestRegistry()

	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{
			name:     "AVX available - select AVX",
			features: cpu.Features{HasSSE: true, HasAVX: true},
			want:     "avx",
		},
		{
			name:     "SSE only - select SSE",
			features: cpu.Features{HasSSE: true},
			want:     "sse",
		},
		{
			name:     "No SIMD - select generic",
			features: cpu.Features{},
			want:     "generic",
		},
		{
			name:     "ForceGeneric - select generic",
			features: cpu.Features{HasSSE: true, HasAVX: true, ForceGeneric: true},
			want:     "generic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := reg.Lookup(tt.features)
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}
			if entry.Name != tt.want {
				t.Errorf("Lookup() = %s, want %s", entry.Name, tt.want)
			}
		})
	}
}

func TestOpRegistry_LookupName(t *testing.T) {
	reg := newTestRegistry()
	all := cpu.Features{HasSSE: true, HasAVX: true}

	if e := reg.LookupName("sse", all); e == nil || e.Lanes != 4 {
		t.Errorf("LookupName(sse) = %+v, want 4-lane entry", e)
	}
	if e := reg.LookupName("avx", all); e == nil || e.Lanes != 8 {
		t.Errorf("LookupName(avx) = %+v, want 8-lane entry", e)
	}
	if e := reg.LookupName("avx", cpu.Features{HasSSE: true}); e != nil {
		t.Errorf("LookupName(avx) without AVX = %s, want nil", e.Name)
	}
	if e := reg.LookupName("neon", all); e != nil {
		t.Errorf("LookupName(neon) = %s, want nil", e.Name)
	}
}

func TestOpRegistry_Lookup_Empty(t *testing.T) {
	reg := &OpRegistry{}
	if e := reg.Lookup(cpu.Features{}); e != nil {
		t.Errorf("Lookup on empty registry = %s, want nil", e.Name)
	}
}

func TestOpRegistry_Reset(t *testing.T) {
	reg := newTestRegistry()
	reg.Reset()

	if n := len(reg.ListEntries()); n != 0 {
		t.Errorf("after Reset got %d entries, want 0", n)
	}
}
