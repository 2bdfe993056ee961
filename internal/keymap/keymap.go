package keymap

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Binding maps keys to an action, with a description for the help line.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "cards", "card"
}

// ByContext returns bindings filtered by context.
func ByContext(bindings []Binding, context string) []Binding {
	var result []Binding
	for _, b := range bindings {
		if b.Context == context {
			result = append(result, b)
		}
	}
	return result
}

// Resolver maps key strings to actions.
type Resolver struct {
	bindings []Binding
	byKey    map[string]Action
}

// NewResolver creates a resolver from bindings. A key bound twice resolves
// to its first binding.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: bindings,
		byKey:    make(map[string]Action),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			if _, ok := r.byKey[key]; !ok {
				r.byKey[key] = b.Action
			}
		}
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.byKey[key]
}

// ResolveKey resolves a bubbletea key message.
func (r *Resolver) ResolveKey(msg tea.KeyMsg) Action {
	return r.Resolve(msg.String())
}

// Help renders a one-line summary of the bindings in context.
func (r *Resolver) Help(context string) string {
	parts := make([]string, 0, len(r.bindings))
	for _, b := range ByContext(r.bindings, context) {
		parts = append(parts, keyLabel(b.Keys[0])+" "+strings.ToLower(b.Description))
	}
	return strings.Join(parts, " · ")
}

func keyLabel(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
