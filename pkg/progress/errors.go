package progress

import (
	"errors"
	"fmt"
)

var ErrUnknownEvent = errors.New("unknown stage event")

// ErrNoTransitionAvailable indicates the event cannot fire from the current state.
type ErrNoTransitionAvailable struct {
	State State
	Event Event
}

func (e *ErrNoTransitionAvailable) Error() string {
	return fmt.Sprintf("stage %q cannot run from state %q: previous stages not completed", e.Event, e.State)
}

// ErrTransitionRejected indicates a guard blocked the event.
type ErrTransitionRejected struct {
	State State
	Event Event
}

func (e *ErrTransitionRejected) Error() string {
	return fmt.Sprintf("stage %q from state %q was rejected by guards", e.Event, e.State)
}

func IsNoTransitionAvailableError(err error) bool {
	var e *ErrNoTransitionAvailable
	return errors.As(err, &e)
}

func IsTransitionRejectedError(err error) bool {
	var e *ErrTransitionRejected
	return errors.As(err, &e)
}
