package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/autopeer-io/carview/internal/carview/controller"
	"github.com/autopeer-io/carview/internal/carview/render"
	"github.com/autopeer-io/carview/pkg/log"
)

const (
	prompt = "plate> "
	help   = `Type a license plate and press Enter to fetch its car data.
Commands:
  :show   print the current car data again
  :help   show this help
  :q      quit`
)

// Shell is a line-oriented front end for the fetch controller. Every input
// line is a plate change followed by a fetch press.
type Shell struct {
	ctrl *controller.Controller
	in   io.Reader
	out  io.Writer
}

// New creates a Shell reading from in and printing to out.
func New(ctrl *controller.Controller, in io.Reader, out io.Writer) *Shell {
	return &Shell{ctrl: ctrl, in: in, out: out}
}

// Run processes input until EOF, a quit command or ctx cancellation.
func (s *Shell) Run(ctx context.Context) error {
	scanCtx, stop := context.WithCancel(ctx)
	defer stop()
	lines, scanErr := s.scan(scanCtx)

	fmt.Fprintln(s.out, help)
	for {
		fmt.Fprint(s.out, prompt)

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			fmt.Fprintln(s.out)
			return <-scanErr
		}

		switch strings.TrimSpace(line) {
		case ":q", ":quit":
			return nil
		case ":help":
			fmt.Fprintln(s.out, help)
			continue
		case ":show":
			s.show()
			continue
		}

		s.ctrl.OnPlateChanged(line)
		err := s.ctrl.Submit(ctx)
		switch {
		case errors.Is(err, controller.ErrEmptyPlate), errors.Is(err, controller.ErrBusy):
			// Already alerted, or silently ignored.
		case err != nil:
			log.Debug("Lookup failed", "plate", line, "error", err)
			s.show()
		default:
			s.show()
		}
	}
}

// show prints the current record, which may be stale after a failure.
func (s *Shell) show() {
	v := render.NewView(s.ctrl.Record())
	if v == nil {
		fmt.Fprintln(s.out, "No car data yet.")
		return
	}
	if err := render.Print(s.out, v); err != nil {
		log.Error(err, "Failed to render car data")
	}
}

// scan feeds input lines to a channel so that Run can also watch ctx.
func (s *Shell) scan(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- scanner.Err()
	}()

	return lines, errc
}
