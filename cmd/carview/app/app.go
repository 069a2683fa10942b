package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	cliflag "k8s.io/component-base/cli/flag"

	"github.com/autopeer-io/carview/cmd/carview/app/options"
	"github.com/autopeer-io/carview/internal/carview/client"
	"github.com/autopeer-io/carview/internal/carview/controller"
	"github.com/autopeer-io/carview/internal/carview/notifier"
	"github.com/autopeer-io/carview/pkg/log"
)

const (
	commandName = "carview"
	commandDesc = `carview looks up the telemetry of a car by its license plate:
temperatures, GPS position, owner and service dates.

Settings are read from flags, from CARVIEW_* environment variables
(CARVIEW_API_BASE_URL for --api.base-url) and from a YAML config file.`

	envPrefix         = "CARVIEW"
	defaultConfigFile = "$HOME/.carview.yaml"
)

// NewCarviewCommand builds the root command; subcommands run until ctx is done.
func NewCarviewCommand(ctx context.Context) *cobra.Command {
	opts := options.NewOptions()
	namedfs := opts.Flags()

	var configFile string

	cmd := &cobra.Command{
		Use:          commandName,
		Short:        "Look up car telemetry by license plate",
		Long:         commandDesc,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd.Flags(), configFile, opts); err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			log.Init(opts.Log)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = log.Sync()
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", fmt.Sprintf("Config file (default %s).", defaultConfigFile))
	cmd.PersistentFlags().AddFlagSet(namedfs.FlagSet(options.FlagSetLog))

	cmd.AddCommand(
		newLookupCommand(ctx, opts, namedfs),
		newShellCommand(ctx, opts, namedfs),
		newServeCommand(ctx, opts, namedfs),
	)

	return cmd
}

// addFlagSets attaches the named groups to a subcommand.
func addFlagSets(cmd *cobra.Command, namedfs cliflag.NamedFlagSets, names ...string) {
	fs := cmd.Flags()
	for _, name := range names {
		fs.AddFlagSet(namedfs.FlagSet(name))
	}
}

// loadConfig layers the config file and environment over the flag values and
// decodes the result into opts. Flags set explicitly on the command line win.
func loadConfig(fs *pflag.FlagSet, configFile string, opts *options.Options) error {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigName(".carview")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.BindPFlags(fs); err != nil {
		return err
	}

	if err := v.Unmarshal(opts); err != nil {
		return fmt.Errorf("failed to decode configuration: %w", err)
	}
	return nil
}

func newController(opts *options.Options, alerts io.Writer) *controller.Controller {
	return controller.New(
		client.New(opts.API),
		notifier.NewConsole(alerts),
		controller.WithLogger(log.WithName("controller").Logr()),
	)
}
