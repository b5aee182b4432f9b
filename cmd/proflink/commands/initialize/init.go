package initialize

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/proflink/pkg/commands/initialize"
	"github.com/arthur-debert/proflink/pkg/config"
)

// NewCommand creates the init command.
func NewCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "init",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			result, err := initialize.Run(cfg, initialize.Options{Force: force})
			if err != nil {
				return err
			}
			pterm.Success.Printfln("profile: %s", result.ProfilePath)
			if result.ConfigExisted {
				pterm.Info.Printfln("config kept: %s (use --force to regenerate)", result.ConfigPath)
			} else {
				pterm.Success.Printfln("config: %s", result.ConfigPath)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)

	return cmd
}
