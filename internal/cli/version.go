package cli

import "github.com/spf13/cobra"

func newVersionCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the algoprim version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.formatter(cmd).Success("algoprim "+opts.Version, map[string]string{"version": opts.Version})
		},
	}
}
