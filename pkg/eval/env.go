package eval

import (
	"sort"

	"src.tvk.sh/pkg/scene"
)

// Env maps identifiers to values. A fresh Env is used for every evaluation
// pass.
type Env struct {
	bindings map[string]scene.Value
}

// NewEnv creates an empty Env.
func NewEnv() *Env {
	return &Env{bindings: make(map[string]scene.Value)}
}

// Define binds name to v, replacing any existing binding.
func (e *Env) Define(name string, v scene.Value) {
	e.bindings[name] = v
}

// Lookup returns the value bound to name.
func (e *Env) Lookup(name string) (scene.Value, bool) {
	v, ok := e.bindings[name]
	return v, ok
}

// Names returns all bound names in sorted order.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.bindings))
	for name := range e.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of bindings.
func (e *Env) Len() int { return len(e.bindings) }
