package controller

import (
	"context"
	"strings"

	"github.com/looplab/fsm"

	"github.com/autopeer-io/carview/internal/carview/model"
	fsmutil "github.com/autopeer-io/carview/internal/pkg/util/fsm"
)

// Phase is the lifecycle state of the fetch interaction.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseLoading   Phase = "loading"
	PhaseSucceeded Phase = "succeeded"
	PhaseFailed    Phase = "failed"
)

const (
	// EventSubmit (Active) starts a lookup for the current plate input.
	EventSubmit = "submit"
	// EventResponseOK applies a decoded record.
	EventResponseOK = "response_ok"
	// EventResponseErr records a failed lookup; the previous record is kept.
	EventResponseErr = "response_err"
)

// newMachine wires the lifecycle transitions. There is no
// submit transition out of PhaseLoading: that missing edge is the admission
// guard which limits the controller to one request in flight.
//
// Every Event on the returned machine must be fired with c.mu held; the
// callbacks read and write controller fields directly.
func (c *Controller) newMachine() *fsm.FSM {
	events := fsm.Events{
		{Name: EventSubmit, Src: []string{string(PhaseIdle), string(PhaseSucceeded), string(PhaseFailed)}, Dst: string(PhaseLoading)},
		{Name: EventResponseOK, Src: []string{string(PhaseLoading)}, Dst: string(PhaseSucceeded)},
		{Name: EventResponseErr, Src: []string{string(PhaseLoading)}, Dst: string(PhaseFailed)},
	}

	callbacks := fsm.Callbacks{
		// Guards (before_...): decide if a transition is allowed
		"before_" + EventSubmit: fsmutil.Guard(c.guardPlatePresent),

		// Side-Effects (enter_...)
		"enter_" + string(PhaseLoading):   fsmutil.WrapEvent(c.actionEnterLoading),
		"enter_" + string(PhaseSucceeded): fsmutil.WrapEvent(c.actionEnterSucceeded),
		"enter_" + string(PhaseFailed):    fsmutil.WrapEvent(c.actionEnterFailed),
	}

	return fsm.NewFSM(string(PhaseIdle), events, callbacks)
}

// guardPlatePresent rejects a submit whose plate input is blank.
func (c *Controller) guardPlatePresent(ctx context.Context, e *fsm.Event) error {
	if strings.TrimSpace(c.plate) == "" {
		return ErrEmptyPlate
	}
	return nil
}

func (c *Controller) actionEnterLoading(ctx context.Context, e *fsm.Event) error {
	c.logger.V(1).Info("Fetching car data", "plate", c.plate, "from", e.Src)
	return nil
}

// actionEnterSucceeded replaces the held record wholesale.
func (c *Controller) actionEnterSucceeded(ctx context.Context, e *fsm.Event) error {
	rec := e.Args[0].(*model.CarRecord)
	c.record = rec.Clone()
	c.logger.V(1).Info("Car data updated", "plate", rec.LicensePlate)
	return nil
}

// actionEnterFailed leaves the held record untouched so stale data stays visible.
func (c *Controller) actionEnterFailed(ctx context.Context, e *fsm.Event) error {
	var cause error
	if len(e.Args) > 0 {
		cause, _ = e.Args[0].(error)
	}
	c.logger.V(1).Info("Car data fetch failed", "plate", c.plate, "error", errorDetail(cause), "stale", c.record != nil)
	return nil
}
