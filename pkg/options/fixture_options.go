package options

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

var _ IOptions = (*FixtureOptions)(nil)

// FixtureOptions selects the car records served by the development API.
type FixtureOptions struct {
	// Path to a JSON array of car records. Empty means the built-in seed data.
	Path string `json:"path" mapstructure:"path"`

	// Watch reloads Path whenever it changes on disk.
	Watch bool `json:"watch" mapstructure:"watch"`
}

func NewFixtureOptions() *FixtureOptions {
	return &FixtureOptions{
		Watch: true,
	}
}

func (o *FixtureOptions) Validate() []error {
	if o == nil || o.Path == "" {
		return nil
	}

	errors := []error{}

	info, err := os.Stat(o.Path)
	switch {
	case err != nil:
		errors = append(errors, fmt.Errorf("fixtures.path: %w", err))
	case info.IsDir():
		errors = append(errors, fmt.Errorf("fixtures.path %q is a directory", o.Path))
	}

	return errors
}

func (o *FixtureOptions) AddFlags(fs *pflag.FlagSet, prefixes ...string) {
	fs.StringVar(&o.Path, "fixtures.path", o.Path, "JSON file with car records to serve. Uses built-in records when empty.")
	fs.BoolVar(&o.Watch, "fixtures.watch", o.Watch, "Reload the fixtures file when it changes.")
}
