package status

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"museumbackend/internal/pkg/apperr"
)

func testMachine() *Machine[string] {
	return NewMachine(map[string]Edge[string]{
		"delete":  {From: "actif", To: "inactif"},
		"restore": {From: "inactif", To: "actif"},
	}, func(s string) string { return s })
}

func TestMachine_Resolve_FollowsEdge(t *testing.T) {
	m := testMachine()

	next, err := m.Resolve("delete", "actif")

	assert.NoError(t, err)
	assert.Equal(t, "inactif", next)
}

func TestMachine_Resolve_RejectsUnknownAction(t *testing.T) {
	m := testMachine()

	_, err := m.Resolve("archive", "actif")

	assert.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestMachine_Resolve_RejectsWrongCurrentState(t *testing.T) {
	m := testMachine()

	_, err := m.Resolve("restore", "actif")

	assert.Error(t, err)
	assert.Equal(t, apperr.KindInvalidTransition, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "actif")
}

func TestMachine_Invalid_NamesActionAndState(t *testing.T) {
	m := testMachine()

	err := m.Invalid("delete", "inactif")

	assert.Equal(t, apperr.KindInvalidTransition, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "delete")
	assert.Contains(t, err.Error(), "inactif")
}

func TestMachine_WorksOverBooleans(t *testing.T) {
	m := NewMachine(map[string]Edge[bool]{
		"delete":  {From: true, To: false},
		"restore": {From: false, To: true},
	}, func(active bool) string {
		if active {
			return "active"
		}
		return "inactive"
	})

	next, err := m.Resolve("delete", true)
	assert.NoError(t, err)
	assert.False(t, next)

	_, err = m.Resolve("delete", false)
	assert.Equal(t, apperr.KindInvalidTransition, apperr.KindOf(err))
}
