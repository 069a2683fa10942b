package fsm

import (
	"context"
	"errors"
	"testing"

	"github.com/looplab/fsm"
)

var errClosed = errors.New("gate closed")

func newGate(open *bool, enterErr error) *fsm.FSM {
	return fsm.NewFSM(
		"locked",
		fsm.Events{
			{Name: "push", Src: []string{"locked"}, Dst: "unlocked"},
		},
		fsm.Callbacks{
			"before_push": Guard(func(ctx context.Context, e *fsm.Event) error {
				if !*open {
					return errClosed
				}
				return nil
			}),
			"enter_unlocked": WrapEvent(func(ctx context.Context, e *fsm.Event) error {
				return enterErr
			}),
		},
	)
}

func TestGuard(t *testing.T) {
	open := false
	m := newGate(&open, nil)

	err := m.Event(context.Background(), "push")
	if got := CancelReason(err); !errors.Is(got, errClosed) {
		t.Fatalf("CancelReason() = %v, want %v", got, errClosed)
	}
	if m.Current() != "locked" {
		t.Errorf("state = %q after cancelled event", m.Current())
	}

	open = true
	if err := m.Event(context.Background(), "push"); err != nil {
		t.Fatalf("Event() error = %v", err)
	}
	if m.Current() != "unlocked" {
		t.Errorf("state = %q, want unlocked", m.Current())
	}
}

func TestWrapEventPropagatesError(t *testing.T) {
	open := true
	boom := errors.New("boom")
	m := newGate(&open, boom)

	if err := m.Event(context.Background(), "push"); !errors.Is(err, boom) {
		t.Errorf("Event() error = %v, want %v", err, boom)
	}
}

func TestIsRejected(t *testing.T) {
	open := true
	m := newGate(&open, nil)
	if err := m.Event(context.Background(), "push"); err != nil {
		t.Fatal(err)
	}

	err := m.Event(context.Background(), "push")
	if !IsRejected(err) {
		t.Errorf("IsRejected(%v) = false, want true", err)
	}
	if CancelReason(err) != nil {
		t.Errorf("CancelReason(%v) should be nil", err)
	}
	if IsRejected(errClosed) {
		t.Error("plain errors are not rejections")
	}
}
