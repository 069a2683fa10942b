package app

import (
	"context"

	"github.com/spf13/cobra"
	cliflag "k8s.io/component-base/cli/flag"

	"github.com/autopeer-io/carview/cmd/carview/app/options"
	"github.com/autopeer-io/carview/internal/carview/render"
)

func newLookupCommand(ctx context.Context, opts *options.Options, namedfs cliflag.NamedFlagSets) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup PLATE",
		Short: "Fetch and print the telemetry of one car",
		Example: `  carview lookup ABC-123
  carview lookup --api.base-url http://fleet.local:8080 XYZ-789`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := newController(opts, cmd.ErrOrStderr())
			ctrl.OnPlateChanged(args[0])

			if err := ctrl.Submit(ctx); err != nil {
				// The alert has already been printed.
				cmd.SilenceErrors = true
				return err
			}

			return render.Print(cmd.OutOrStdout(), render.NewView(ctrl.Record()))
		},
	}

	addFlagSets(cmd, namedfs, options.FlagSetAPI)
	return cmd
}
