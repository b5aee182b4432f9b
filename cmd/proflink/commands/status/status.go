package status

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/proflink/pkg/commands/status"
	"github.com/arthur-debert/proflink/pkg/config"
)

// NewCommand creates the status command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			report, err := status.Run(cmd.Context(), cfg, status.Options{})
			if err != nil {
				return err
			}
			status.Print(report)
			return nil
		},
	}
}
