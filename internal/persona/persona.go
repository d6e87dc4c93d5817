package persona

import (
	"fmt"
	"strings"
)

// NoSelection is the selection label meaning no writer has been chosen.
const NoSelection = "Select a Writer"

// Persona is a selectable writer identity. ID keys its static resources.
type Persona struct {
	Name string `yaml:"name" json:"name"`
	ID   int    `yaml:"id" json:"id"`
}

// builtin is the fixed writer list. Every writer shares the id-1 resources.
var builtin = []Persona{
	{Name: "Streamlit Devrel", ID: 1},
	{Name: "Vercel Devrel", ID: 1},
	{Name: "MongoDB Devrel", ID: 1},
}

// Registry is an ordered, immutable set of personas.
type Registry struct {
	personas []Persona
	byName   map[string]Persona
}

// Builtin returns the registry of built-in writers.
func Builtin() *Registry {
	r, err := NewRegistry(builtin)
	if err != nil {
		panic(err) // builtin list is static
	}
	return r
}

// NewRegistry validates personas and returns a registry preserving their order.
func NewRegistry(personas []Persona) (*Registry, error) {
	if len(personas) == 0 {
		return nil, fmt.Errorf("persona list is empty")
	}
	r := &Registry{
		personas: make([]Persona, 0, len(personas)),
		byName:   make(map[string]Persona, len(personas)),
	}
	for _, p := range personas {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, fmt.Errorf("persona with empty name")
		}
		if name == NoSelection {
			return nil, fmt.Errorf("persona name %q is reserved", name)
		}
		if p.ID < 0 {
			return nil, fmt.Errorf("persona %q has negative id %d", name, p.ID)
		}
		if _, dup := r.byName[name]; dup {
			return nil, fmt.Errorf("duplicate persona name: %q", name)
		}
		p.Name = name
		r.personas = append(r.personas, p)
		r.byName[name] = p
	}
	return r, nil
}

// Options returns the selection labels: NoSelection first, then every name.
func (r *Registry) Options() []string {
	opts := make([]string, 0, len(r.personas)+1)
	opts = append(opts, NoSelection)
	for _, p := range r.personas {
		opts = append(opts, p.Name)
	}
	return opts
}

// Lookup resolves a selection label. NoSelection and unknown names report false.
func (r *Registry) Lookup(name string) (Persona, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// All returns a copy of the personas in display order.
func (r *Registry) All() []Persona {
	out := make([]Persona, len(r.personas))
	copy(out, r.personas)
	return out
}

// Len returns the number of personas, excluding NoSelection.
func (r *Registry) Len() int {
	return len(r.personas)
}
