package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	cliflag "k8s.io/component-base/cli/flag"

	"github.com/autopeer-io/carview/cmd/carview/app/options"
)

func newServeCommand(ctx context.Context, opts *options.Options, namedfs cliflag.NamedFlagSets) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a development car telemetry API",
		Long: `serve runs an HTTP server implementing GET /api/car/{licensePlate}
from built-in records or a JSON fixtures file, which is reloaded on change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := opts.FleetAPIConfig().New()
			if err != nil {
				return fmt.Errorf("failed to create fleet API: %w", err)
			}
			return api.Run(ctx)
		},
	}

	addFlagSets(cmd, namedfs, options.FlagSetHTTP, options.FlagSetFixtures)
	return cmd
}
