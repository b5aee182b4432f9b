package uninstall

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/proflink/pkg/commands/uninstall"
	"github.com/arthur-debert/proflink/pkg/config"
	"github.com/arthur-debert/proflink/pkg/errors"
)

// NewCommand creates the uninstall command.
func NewCommand(dryRun *bool) *cobra.Command {
	var profileToken, shellToken string
	var removePackages, yes bool

	cmd := &cobra.Command{
		Use:     "uninstall",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			report, err := uninstall.Run(cmd.Context(), cfg, uninstall.Options{
				ProfileToken:   profileToken,
				ShellToken:     shellToken,
				RemovePackages: removePackages,
				Force:          yes,
				DryRun:         *dryRun,
			})
			if err != nil {
				return err
			}
			if report.Failed() {
				return errors.New(errors.ErrInternal, "one or more uninstall steps failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&profileToken, "profile", "current", MsgFlagProfile)
	cmd.Flags().StringVar(&shellToken, "shell", "current", MsgFlagShell)
	cmd.Flags().BoolVar(&removePackages, "packages", false, MsgFlagPackages)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)

	return cmd
}
