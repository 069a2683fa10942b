package app

import (
	"context"

	"github.com/spf13/cobra"
	cliflag "k8s.io/component-base/cli/flag"

	"github.com/autopeer-io/carview/cmd/carview/app/options"
	"github.com/autopeer-io/carview/internal/carview/shell"
)

func newShellCommand(ctx context.Context, opts *options.Options, namedfs cliflag.NamedFlagSets) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Look up cars interactively, one plate per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := newController(opts, cmd.ErrOrStderr())
			return shell.New(ctrl, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
		},
	}

	addFlagSets(cmd, namedfs, options.FlagSetAPI)
	return cmd
}
