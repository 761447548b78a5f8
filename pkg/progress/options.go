package progress

// Option configures a Tracker during construction.
type Option func(*Tracker)

// WithState starts the tracker at s instead of Pending. Unknown states are ignored.
func WithState(s State) Option {
	return func(t *Tracker) {
		if s.index() >= 0 {
			t.current = s
		}
	}
}

// WithGuard adds a guard evaluated whenever event fires.
func WithGuard(event Event, guard Guard) Option {
	return func(t *Tracker) {
		if guard != nil {
			t.guards[event] = append(t.guards[event], guard)
		}
	}
}

// WithAction adds an action run on every transition, in registration order.
func WithAction(action Action) Option {
	return func(t *Tracker) {
		if action != nil {
			t.actions = append(t.actions, action)
		}
	}
}
