package notifier

import (
	"fmt"
	"io"
	"sync"

	"github.com/autopeer-io/carview/pkg/log"
)

// Console prints alerts as "title: message" lines.
type Console struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsole returns a Console writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Alert writes one alert line. It returns once the line is written.
func (c *Console) Alert(title, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := fmt.Fprintf(c.out, "%s: %s\n", title, message); err != nil {
		log.Error(err, "Failed to write alert", "title", title)
		return
	}
	log.Debug("Alert shown", "title", title, "message", message)
}
