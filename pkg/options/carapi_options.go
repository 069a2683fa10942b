package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

var _ IOptions = (*CarAPIOptions)(nil)

// CarAPIOptions configures the client side of the car telemetry API.
type CarAPIOptions struct {
	// BaseURL is joined with "/api/car/{licensePlate}" to form request URLs.
	BaseURL string `json:"base-url" mapstructure:"base-url"`

	// Timeout bounds a single request, including reading the body.
	Timeout time.Duration `json:"timeout" mapstructure:"timeout"`
}

// NewCarAPIOptions creates a CarAPIOptions object with default parameters.
func NewCarAPIOptions() *CarAPIOptions {
	return &CarAPIOptions{
		BaseURL: "http://localhost:8080",
		Timeout: 10 * time.Second,
	}
}

// Validate is used to parse and validate the parameters entered by the user at
// the command line when the program starts.
func (o *CarAPIOptions) Validate() []error {
	if o == nil {
		return nil
	}

	errors := []error{}

	if err := ValidateBaseURL(o.BaseURL); err != nil {
		errors = append(errors, fmt.Errorf("api.base-url: %w", err))
	}

	if o.Timeout < 0 {
		errors = append(errors, fmt.Errorf("api.timeout must not be negative, got %s", o.Timeout))
	}

	return errors
}

// Endpoint returns the base URL without a trailing slash.
func (o *CarAPIOptions) Endpoint() string {
	return strings.TrimRight(o.BaseURL, "/")
}

// AddFlags adds flags for the car API client to the specified FlagSet.
func (o *CarAPIOptions) AddFlags(fs *pflag.FlagSet, prefixes ...string) {
	fs.StringVar(&o.BaseURL, "api.base-url", o.BaseURL, "Base URL of the car telemetry API.")
	fs.DurationVar(&o.Timeout, "api.timeout", o.Timeout, "Timeout for a single car lookup request.")
}
