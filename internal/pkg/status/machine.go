// Package status implements the soft-delete lifecycle shared by artists
// and artworks. The two entities encode their state differently (a French
// string vs a boolean), so the machine is generic over the state type.
package status

import (
	"museumbackend/internal/pkg/apperr"
)

// Edge is one legal transition.
type Edge[S comparable] struct {
	From S
	To   S
}

// Machine maps action names onto edges of a two-state lifecycle.
type Machine[S comparable] struct {
	edges    map[string]Edge[S]
	describe func(S) string
}

func NewMachine[S comparable](edges map[string]Edge[S], describe func(S) string) *Machine[S] {
	return &Machine[S]{edges: edges, describe: describe}
}

// Resolve returns the target state for action given the current state.
// The check here is advisory: callers must re-validate the from state at
// write time (guarded UPDATE), since the row can move between read and
// write.
func (m *Machine[S]) Resolve(action string, current S) (S, error) {
	var zero S
	edge, ok := m.edges[action]
	if !ok {
		return zero, apperr.Newf(apperr.KindValidation, "invalid action %q", action)
	}
	if current != edge.From {
		return zero, m.invalid(action, current)
	}
	return edge.To, nil
}

// Invalid builds the transition error reported when the write-time guard
// finds a state that no longer matches the edge.
func (m *Machine[S]) Invalid(action string, current S) error {
	return m.invalid(action, current)
}

func (m *Machine[S]) invalid(action string, current S) error {
	return apperr.Newf(apperr.KindInvalidTransition,
		"action %q not allowed: entity is already %s", action, m.describe(current))
}
