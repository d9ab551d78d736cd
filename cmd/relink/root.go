package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/relink/internal/version"
	"github.com/arthur-debert/relink/pkg/commands/doctor"
	"github.com/arthur-debert/relink/pkg/commands/genconfig"
	"github.com/arthur-debert/relink/pkg/commands/link"
	"github.com/arthur-debert/relink/pkg/errors"
	"github.com/arthur-debert/relink/pkg/linker"
	"github.com/arthur-debert/relink/pkg/logging"
	"github.com/arthur-debert/relink/pkg/status"
	"github.com/arthur-debert/relink/pkg/style"
)

var (
	verbosity  int
	configPath string
	force      bool
	writeFlag  bool

	rootCmd = &cobra.Command{
		Use:   "relink",
		Short: "A declarative symlink manager",
		Long: `relink keeps a declared set of symlinks in shape. Links are described
in a configuration file with ${name} aliases and tilde paths; "relink link"
creates them idempotently and "relink doctor" audits their health without
touching anything.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			style.AutoColor()
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: ./relink.{toml,json,yaml}, then $XDG_CONFIG_HOME/relink/)")

	linkCmd.Flags().BoolVar(&force, "force", false, "Replace whatever occupies a link's destination, regardless of per-link settings")
	genConfigCmd.Flags().BoolVar(&writeFlag, "write", false, "Write the starter config to the default location instead of printing it")

	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(genConfigCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Create the configured symlinks",
	Long: `Link processes every configured link in declaration order and creates
the missing symlinks. Existing destinations are skipped unless force is set,
either per link in the config or globally with --force.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		agg, err := link.Apply(link.Options{
			ConfigPath: configPath,
			Force:      force,
			Out:        cmd.OutOrStdout(),
		})
		if err != nil {
			return err
		}
		if agg.AnyFailed() {
			failed := agg.Count(string(linker.ResultFailed)) + agg.Count(style.ErrorTag)
			return errors.Newf(errors.ErrLinkFailed, "%d of %d links failed", failed, agg.Total())
		}
		return nil
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Audit the configured symlinks without changing anything",
	Long: `Doctor inspects every configured link and reports its health:
ok, missing, broken, wrong-target or not-a-symlink. Nothing is mutated.
The exit code is non-zero unless every link is ok.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		agg, err := doctor.Check(doctor.Options{
			ConfigPath: configPath,
			Out:        cmd.OutOrStdout(),
		})
		if err != nil {
			return err
		}
		if !agg.AllHealthy() {
			unhealthy := agg.Total() - agg.Count(string(status.StatusOK))
			return errors.Newf(errors.ErrLinkUnhealthy, "%d of %d links are not ok", unhealthy, agg.Total())
		}
		return nil
	},
}

var genConfigCmd = &cobra.Command{
	Use:   "gen-config",
	Short: "Print a starter configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return genconfig.GenConfig(genconfig.Options{
			Write: writeFlag,
			Out:   cmd.OutOrStdout(),
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("relink version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `To load completions:

Bash:
  $ source <(relink completion bash)

Zsh:
  $ relink completion zsh > "${fpath[1]}/_relink"

Fish:
  $ relink completion fish | source

PowerShell:
  PS> relink completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate bash completion")
			}
		case "zsh":
			if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate zsh completion")
			}
		case "fish":
			if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
				log.Error().Err(err).Msg("Failed to generate fish completion")
			}
		case "powershell":
			if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate powershell completion")
			}
		}
	},
}
