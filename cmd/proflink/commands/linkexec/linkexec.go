// Package linkexec is the elevated child entry point. The parent spawns
// `proflink linkexec` through the OS elevation mechanism and reads its exit
// code as the success signal.
package linkexec

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/proflink/pkg/linker"
	"github.com/arthur-debert/proflink/pkg/logging"
)

// NewCommand creates the hidden linkexec command.
func NewCommand() *cobra.Command {
	var remove bool

	cmd := &cobra.Command{
		Use:    "linkexec [--remove TARGET | SOURCE TARGET]",
		Short:  "Create or remove a profile symlink (internal)",
		Hidden: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if remove {
				return cobra.ExactArgs(1)(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("linkexec")
			if remove {
				logger.Info().Str("target", args[0]).Msg("removing link as elevated child")
				return linker.RemoveLink(args[0])
			}
			logger.Info().Str("source", args[0]).Str("target", args[1]).Msg("creating link as elevated child")
			return linker.CreateLink(args[0], args[1])
		},
	}

	cmd.Flags().BoolVar(&remove, "remove", false, "Remove the target instead of linking")

	return cmd
}
