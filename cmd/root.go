// The root command for the CLI.
// This root 'composes' your subcommands and provides global config flags like --debug.
package cmd

import (
	"fmt"
	"os"

	tagsCmd "github.com/redjax/kstable/internal/commands/tagsCommand"
	updateCmd "github.com/redjax/kstable/internal/commands/updateCommand"
	versionCmd "github.com/redjax/kstable/internal/commands/versionCommand"
	"github.com/redjax/kstable/internal/ui"

	"github.com/spf13/cobra"
)

var (
	// A path to a file to load configuration from
	cfgFile string
	// For enabling debug logging with --debug/-D
	debug bool
)

// Cobra root command
var rootCmd = &cobra.Command{
	// The command you run to call the compiled binary
	Use: "kstable",
	// A short description of what the command does
	Short: "Sync a kernel source tree with upstream linux-stable releases.",
	// A longer description for the command
	Long: `Keep a local Linux kernel source tree in sync with upstream linux-stable:
fetch release tags, compute the target version, then cherry-pick or merge
the version range into the current branch.`,
	// Adds a help menu you can display with --help/-h
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute the root Cobra command.
// Errors are printed once, here, in red; every fatal path exits 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error("Error: "+err.Error()))
		os.Exit(1)
	}
}

// Initialize the root command
func init() {
	// Add flags to the CLI's root command, making them 'global'
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (JSON/TOML/YAML/env)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")

	// Add other CLI subcommands
	rootCmd.AddCommand(updateCmd.NewUpdateCommand())
	rootCmd.AddCommand(tagsCmd.NewTagsCommand())
	rootCmd.AddCommand(versionCmd.NewVersionCommand())
}
