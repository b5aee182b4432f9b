// Package commands assembles the proflink command tree.
package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/proflink/cmd/proflink/commands/docs"
	initcmd "github.com/arthur-debert/proflink/cmd/proflink/commands/initialize"
	installcmd "github.com/arthur-debert/proflink/cmd/proflink/commands/install"
	"github.com/arthur-debert/proflink/cmd/proflink/commands/linkexec"
	statuscmd "github.com/arthur-debert/proflink/cmd/proflink/commands/status"
	uninstallcmd "github.com/arthur-debert/proflink/cmd/proflink/commands/uninstall"
	"github.com/arthur-debert/proflink/internal/version"
	"github.com/arthur-debert/proflink/pkg/logging"
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var verbosity int
	var dryRun bool

	rootCmd := &cobra.Command{
		Use:   "proflink",
		Short: "Install a PowerShell profile bundle via symlinks",
		Long: `proflink places a PowerShell profile script into the profile slot of one
or both PowerShell variants via symbolic link, installs a fixed list of
supporting packages, and fetches a prompt-theme repository.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Preview changes without executing them")

	rootCmd.AddCommand(installcmd.NewCommand(&dryRun))
	rootCmd.AddCommand(uninstallcmd.NewCommand(&dryRun))
	rootCmd.AddCommand(statuscmd.NewCommand())
	rootCmd.AddCommand(initcmd.NewCommand())
	rootCmd.AddCommand(linkexec.NewCommand())
	rootCmd.AddCommand(docs.NewCommand())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newManCmd(rootCmd))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("proflink version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}
