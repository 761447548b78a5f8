package progress

import (
	"context"
	"fmt"
	"sync"
)

// State is a point in the stage order.
type State string

const (
	Pending   State = "pending"
	Loaded    State = "loaded"
	Profiled  State = "profiled"
	Located   State = "located"
	Selected  State = "selected"
	Traced    State = "traced"
	Defined   State = "defined"
	Extracted State = "extracted"
)

// Event marks the completion of one stage.
type Event string

const (
	EventLoad       Event = "load_image"
	EventProfiles   Event = "make_spatial_profiles"
	EventApertures  Event = "locate_aperture_positions"
	EventOrders     Event = "select_orders"
	EventTrace      Event = "trace_apertures"
	EventParameters Event = "define_aperture_parameters"
	EventExtract    Event = "extract_apertures"
)

// States lists every state in stage order.
var States = []State{Pending, Loaded, Profiled, Located, Selected, Traced, Defined, Extracted}

// Events lists every stage event in execution order. Events[i] moves the
// tracker into States[i+1].
var Events = []Event{EventLoad, EventProfiles, EventApertures, EventOrders, EventTrace, EventParameters, EventExtract}

// Target returns the state reached when the event fires.
func (e Event) Target() (State, bool) {
	for i, ev := range Events {
		if ev == e {
			return States[i+1], true
		}
	}
	return "", false
}

func (s State) index() int {
	for i, st := range States {
		if st == s {
			return i
		}
	}
	return -1
}

// Guard decides whether an event may fire from the current state.
type Guard func(ctx context.Context, from State, event Event) bool

// Action runs before the state changes. Returning an error aborts the transition.
type Action func(ctx context.Context, from, to State, event Event) error

// Tracker is a thread-safe record of stage progress.
type Tracker struct {
	mu      sync.RWMutex
	current State
	guards  map[Event][]Guard
	actions []Action
}

// New creates a tracker in the Pending state.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		current: Pending,
		guards:  make(map[Event][]Guard),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracker) Current() State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}

// Completed reports whether the given state has been reached.
func (t *Tracker) Completed(s State) bool {
	idx := s.index()
	if idx < 0 {
		return false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current.index() >= idx
}

// Done reports whether extraction has completed.
func (t *Tracker) Done() bool {
	return t.Completed(Extracted)
}

// Fire records the completion of the stage behind event.
func (t *Tracker) Fire(ctx context.Context, event Event) error {
	to, ok := event.Target()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEvent, event)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	from := t.current
	if !reachable(from, to) {
		return &ErrNoTransitionAvailable{State: from, Event: event}
	}
	if !t.guardsPass(ctx, from, event) {
		return &ErrTransitionRejected{State: from, Event: event}
	}

	for _, action := range t.actions {
		if err := action(ctx, from, to, event); err != nil {
			return fmt.Errorf("action failed: %w", err)
		}
	}

	t.current = to
	return nil
}

// CanFire reports whether Fire would succeed, without running actions.
func (t *Tracker) CanFire(ctx context.Context, event Event) bool {
	to, ok := event.Target()
	if !ok {
		return false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	return reachable(t.current, to) && t.guardsPass(ctx, t.current, event)
}

// Reset returns the tracker to Pending.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = Pending
}

// reachable allows re-running any completed stage and running the next one.
func reachable(from, to State) bool {
	return to.index() <= from.index()+1
}

func (t *Tracker) guardsPass(ctx context.Context, from State, event Event) bool {
	for _, guard := range t.guards[event] {
		if !guard(ctx, from, event) {
			return false
		}
	}
	return true
}
