package install

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/proflink/pkg/commands/install"
	"github.com/arthur-debert/proflink/pkg/config"
	"github.com/arthur-debert/proflink/pkg/errors"
)

// NewCommand creates the install command.
func NewCommand(dryRun *bool) *cobra.Command {
	var profileToken, shellToken, source string
	var noPackages, force bool

	cmd := &cobra.Command{
		Use:     "install",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			report, err := install.Run(cmd.Context(), cfg, install.Options{
				ProfileToken: profileToken,
				ShellToken:   shellToken,
				Source:       source,
				NoPackages:   noPackages,
				Force:        force,
				DryRun:       *dryRun,
			})
			if err != nil {
				return err
			}
			if report.Failed() {
				return errors.New(errors.ErrInternal, "one or more install steps failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&profileToken, "profile", "current", MsgFlagProfile)
	cmd.Flags().StringVar(&shellToken, "shell", "current", MsgFlagShell)
	cmd.Flags().StringVar(&source, "source", "", MsgFlagSource)
	cmd.Flags().BoolVar(&noPackages, "no-packages", false, MsgFlagNoPackages)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)

	return cmd
}
