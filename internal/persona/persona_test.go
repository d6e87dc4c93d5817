package persona

import (
	"strings"
	"testing"
)

func TestBuiltin_Options(t *testing.T) {
	r := Builtin()
	opts := r.Options()
	want := []string{NoSelection, "Streamlit Devrel", "Vercel Devrel", "MongoDB Devrel"}
	if len(opts) != len(want) {
		t.Fatalf("expected %d options, got %d: %v", len(want), len(opts), opts)
	}
	for i := range want {
		if opts[i] != want[i] {
			t.Errorf("option %d: got %q, want %q", i, opts[i], want[i])
		}
	}
}

func TestBuiltin_SharedID(t *testing.T) {
	for _, p := range Builtin().All() {
		if p.ID != 1 {
			t.Errorf("%s: got id %d, want 1", p.Name, p.ID)
		}
	}
}

func TestLookup(t *testing.T) {
	r := Builtin()

	p, ok := r.Lookup("Vercel Devrel")
	if !ok {
		t.Fatal("expected Vercel Devrel to resolve")
	}
	if p.ID != 1 {
		t.Errorf("got id %d, want 1", p.ID)
	}

	if _, ok := r.Lookup(NoSelection); ok {
		t.Error("NoSelection must not resolve to a persona")
	}
	if _, ok := r.Lookup("Nobody"); ok {
		t.Error("unknown name must not resolve")
	}
}

func TestNewRegistry_Invalid(t *testing.T) {
	cases := []struct {
		name     string
		personas []Persona
		errSub   string
	}{
		{"empty", nil, "empty"},
		{"blank name", []Persona{{Name: "  ", ID: 1}}, "empty name"},
		{"reserved", []Persona{{Name: NoSelection, ID: 1}}, "reserved"},
		{"negative id", []Persona{{Name: "A", ID: -1}}, "negative id"},
		{"duplicate", []Persona{{Name: "A", ID: 1}, {Name: "A", ID: 2}}, "duplicate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRegistry(tc.personas)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.errSub) {
				t.Errorf("error %q should mention %q", err, tc.errSub)
			}
		})
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	r := Builtin()
	all := r.All()
	all[0].Name = "mutated"
	if r.All()[0].Name != "Streamlit Devrel" {
		t.Error("All must not expose internal slice")
	}
}
