package fsm

import (
	"context"
	"errors"

	"github.com/looplab/fsm"
)

// WrapEvent adapts an error-returning callback to fsm.Callback, storing the
// error on the event so that FSM.Event returns it.
func WrapEvent(fn func(ctx context.Context, event *fsm.Event) error) fsm.Callback {
	return func(ctx context.Context, event *fsm.Event) {
		if err := fn(ctx, event); err != nil {
			event.Err = err
		}
	}
}

// Guard adapts a predicate to a before_<event> callback. A non-nil error
// cancels the transition and is reported through fsm.CanceledError.
func Guard(fn func(ctx context.Context, event *fsm.Event) error) fsm.Callback {
	return func(ctx context.Context, event *fsm.Event) {
		if err := fn(ctx, event); err != nil {
			event.Cancel(err)
		}
	}
}

// CancelReason returns the error a Guard cancelled with, or nil when err is
// not a cancellation.
func CancelReason(err error) error {
	var canceled fsm.CanceledError
	if errors.As(err, &canceled) {
		return canceled.Err
	}
	return nil
}

// IsRejected reports whether err means the event is not allowed from the
// current state.
func IsRejected(err error) bool {
	var invalid fsm.InvalidEventError
	var inTransition fsm.InTransitionError
	return errors.As(err, &invalid) || errors.As(err, &inTransition)
}
