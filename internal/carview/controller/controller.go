package controller

import (
	"context"
	"errors"
	"sync"

	"github.com/go-logr/logr"
	"github.com/looplab/fsm"

	"github.com/autopeer-io/carview/internal/carview/model"
	fsmutil "github.com/autopeer-io/carview/internal/pkg/util/fsm"
)

// Alert texts shown to the user.
const (
	TitleError         = "Error"
	MessageEmptyPlate  = "Please enter a license plate number"
	MessageFetchFailed = "Failed to fetch car data"
)

var (
	// ErrEmptyPlate is returned by Submit when the plate input is blank.
	ErrEmptyPlate = errors.New("license plate is empty")

	// ErrBusy is returned by Submit while another lookup is in flight.
	ErrBusy = errors.New("a car lookup is already in progress")

	errNoRecord = errors.New("no car record returned")
)

// CarFetcher retrieves the telemetry for one license plate.
type CarFetcher interface {
	GetCar(ctx context.Context, plate string) (*model.CarRecord, error)
}

// Notifier is the blocking user-facing alert primitive.
type Notifier interface {
	Alert(title, message string)
}

// State is a consistent snapshot of the controller.
type State struct {
	Plate  string
	Phase  Phase
	Record *model.CarRecord
}

// Loading reports whether a lookup is in flight.
func (s State) Loading() bool {
	return s.Phase == PhaseLoading
}

// Controller drives the plate input → lookup → render interaction.
//
// The zero value is not usable; construct with New. All methods are safe
// for concurrent use.
type Controller struct {
	fetcher  CarFetcher
	notifier Notifier
	logger   logr.Logger

	mu      sync.Mutex
	plate   string
	record  *model.CarRecord
	machine *fsm.FSM
}

// Option customises a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l logr.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// New creates a Controller in the idle phase with an empty plate input and
// no record.
func New(fetcher CarFetcher, notifier Notifier, opts ...Option) *Controller {
	c := &Controller{
		fetcher:  fetcher,
		notifier: notifier,
		logger:   logr.Discard(),
	}
	for _, o := range opts {
		o(c)
	}
	c.machine = c.newMachine()
	return c
}

// OnPlateChanged stores the current text of the plate input.
func (c *Controller) OnPlateChanged(text string) {
	c.mu.Lock()
	c.plate = text
	c.mu.Unlock()
}

// Submit looks up the car for the current plate input.
//
// It is a no-op returning ErrBusy while a lookup is in flight. A blank plate
// raises the empty-plate alert and returns ErrEmptyPlate without a request.
// On failure the error alert is raised, the previous record is kept and the
// transport error is returned. Submit blocks until the outcome is applied.
func (c *Controller) Submit(ctx context.Context) error {
	// Transitions run detached from ctx: only the request itself is
	// cancellable, and the outcome must still be applied afterwards or the
	// controller would stay in PhaseLoading.
	fsmCtx := context.WithoutCancel(ctx)

	plate, err := c.begin(fsmCtx)
	switch {
	case errors.Is(err, ErrBusy):
		c.logger.V(1).Info("Ignoring submit while loading")
		return err
	case errors.Is(err, ErrEmptyPlate):
		c.notifier.Alert(TitleError, MessageEmptyPlate)
		return err
	case err != nil:
		return err
	}

	rec, err := c.fetcher.GetCar(ctx, plate)
	if err == nil && rec == nil {
		err = errNoRecord
	}

	if err != nil {
		if ferr := c.finish(fsmCtx, EventResponseErr, err); ferr != nil {
			return ferr
		}
		c.notifier.Alert(TitleError, FailureMessage(err))
		return err
	}

	return c.finish(fsmCtx, EventResponseOK, rec)
}

// begin moves the machine to PhaseLoading and returns the plate to request.
func (c *Controller) begin(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.machine.Event(ctx, EventSubmit)
	if err == nil {
		return c.plate, nil
	}
	if fsmutil.IsRejected(err) {
		return "", ErrBusy
	}
	if reason := fsmutil.CancelReason(err); reason != nil {
		return "", reason
	}
	return "", err
}

func (c *Controller) finish(ctx context.Context, event string, arg any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.machine.Event(ctx, event, arg)
}

// State returns a snapshot; the record is a copy.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return State{
		Plate:  c.plate,
		Phase:  Phase(c.machine.Current()),
		Record: c.record.Clone(),
	}
}

// Loading reports whether a lookup is in flight.
func (c *Controller) Loading() bool {
	return c.State().Loading()
}

// Record returns a copy of the last successfully fetched record, or nil.
func (c *Controller) Record() *model.CarRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.record.Clone()
}

// FailureMessage builds the fetch-failure alert text. The detail is appended
// only when err carries a message.
func FailureMessage(err error) string {
	if detail := errorDetail(err); detail != "" {
		return MessageFetchFailed + ": " + detail
	}
	return MessageFetchFailed
}

func errorDetail(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
