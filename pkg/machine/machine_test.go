package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type TestState string

const (
	StatePending   TestState = "Pending"
	StateSubmitted TestState = "Submitted"
	StateCanceled  TestState = "Canceled"
	StateDone      TestState = "Done"
)

func TestToState(t *testing.T) {
	t.Run("valid transition", func(t *testing.T) {
		machine := New(StatePending,
			From(StatePending).To(StateSubmitted),
			From(StateSubmitted).To(StateDone, StateCanceled),
		)

		err := machine.ToState(StateSubmitted)
		assert.Nil(t, err)
		assert.Equal(t, StatePending, machine.Current())
	})

	t.Run("invalid transition", func(t *testing.T) {
		machine := New(StateSubmitted,
			From(StatePending).To(StateSubmitted),
			From(StateSubmitted).To(StateDone, StateCanceled),
		)

		err := machine.ToState(StatePending)
		assert.Equal(t, ErrInvalidTransition, err)
		assert.Equal(t, StateSubmitted, machine.Current())
	})
}

func TestTransition(t *testing.T) {
	machine := New(StatePending,
		From(StatePending).To(StateSubmitted),
		From(StateSubmitted).To(StateDone, StateCanceled),
	)

	assert.Nil(t, machine.Transition(StateSubmitted))
	assert.Equal(t, StateSubmitted, machine.Current())

	assert.Equal(t, ErrInvalidTransition, machine.Transition(StatePending))
	assert.Equal(t, StateSubmitted, machine.Current())

	assert.Nil(t, machine.Transition(StateDone))
	assert.True(t, machine.IsTerminal())
}

func TestIsTerminal(t *testing.T) {
	machine := New(StatePending,
		From(StatePending).To(StateDone),
	)

	assert.False(t, machine.IsTerminal())
	assert.Nil(t, machine.Transition(StateDone))
	assert.True(t, machine.IsTerminal())
}
