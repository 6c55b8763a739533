package machine

import "errors"

type State interface {
	~string
}

// Allowable maps where a from state is allowed to transition to
type Allowable[S State] struct {
	from S
	to   []S
}

// StateMachine tracks a current state and the set of allowed transitions
type StateMachine[S State] struct {
	current   S
	allowable []Allowable[S]
}

var (
	ErrInvalidTransition = errors.New("invalid state transition")
)

// TransitionBuilder helps in creating a from-to relationship for state transitions
type TransitionBuilder[S State] struct {
	transition Allowable[S]
}

func New[S State](currentState S, transitions ...Allowable[S]) *StateMachine[S] {
	return &StateMachine[S]{current: currentState, allowable: transitions}
}

// From initializes a transition from a specific state
func From[S State](from S) *TransitionBuilder[S] {
	return &TransitionBuilder[S]{transition: Allowable[S]{from: from}}
}

// To sets the possible destination states and returns the configured transition
func (tb *TransitionBuilder[S]) To(to ...S) Allowable[S] {
	tb.transition.to = to
	return tb.transition
}

// Current returns the state the machine is in
func (m *StateMachine[S]) Current() S {
	return m.current
}

// ToState determines if the machine can transition to the given state
func (m *StateMachine[S]) ToState(s S) error {
	for _, transition := range m.allowable {
		if transition.from != m.current {
			continue
		}

		for _, to := range transition.to {
			if to == s {
				return nil
			}
		}
	}

	return ErrInvalidTransition
}

// Transition moves the machine to the given state if the transition is allowed
func (m *StateMachine[S]) Transition(s S) error {
	if err := m.ToState(s); err != nil {
		return err
	}

	m.current = s
	return nil
}

// IsTerminal reports whether no transition leads out of the current state
func (m *StateMachine[S]) IsTerminal() bool {
	for _, transition := range m.allowable {
		if transition.from == m.current && len(transition.to) > 0 {
			return false
		}
	}

	return true
}
