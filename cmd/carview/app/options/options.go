package options

import (
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	cliflag "k8s.io/component-base/cli/flag"

	"github.com/autopeer-io/carview/internal/fleetapi"
	"github.com/autopeer-io/carview/pkg/log"
	"github.com/autopeer-io/carview/pkg/options"
)

// Flag set names returned by Options.Flags.
const (
	FlagSetAPI      = "api"
	FlagSetHTTP     = "http"
	FlagSetFixtures = "fixtures"
	FlagSetLog      = "log"
)

type Options struct {
	API      *options.CarAPIOptions  `json:"api" mapstructure:"api"`
	HTTP     *options.HttpOptions    `json:"http" mapstructure:"http"`
	Fixtures *options.FixtureOptions `json:"fixtures" mapstructure:"fixtures"`
	Log      *log.Options            `json:"log" mapstructure:"log"`
}

func NewOptions() *Options {
	return &Options{
		API:      options.NewCarAPIOptions(),
		HTTP:     options.NewHttpOptions(),
		Fixtures: options.NewFixtureOptions(),
		Log:      log.NewOptions(),
	}
}

func (o *Options) Flags() cliflag.NamedFlagSets {
	fss := cliflag.NamedFlagSets{}
	o.API.AddFlags(fss.FlagSet(FlagSetAPI))
	o.HTTP.AddFlags(fss.FlagSet(FlagSetHTTP))
	o.Fixtures.AddFlags(fss.FlagSet(FlagSetFixtures))
	o.Log.AddFlags(fss.FlagSet(FlagSetLog))
	return fss
}

func (o *Options) Validate() error {
	errs := []error{}
	errs = append(errs, o.API.Validate()...)
	errs = append(errs, o.HTTP.Validate()...)
	errs = append(errs, o.Fixtures.Validate()...)
	errs = append(errs, o.Log.Validate()...)
	return utilerrors.NewAggregate(errs)
}

// FleetAPIConfig returns the configuration for the serve command.
func (o *Options) FleetAPIConfig() *fleetapi.Config {
	return &fleetapi.Config{
		HttpOptions:    o.HTTP,
		FixtureOptions: o.Fixtures,
	}
}
