package updatecommand

import (
	"github.com/spf13/cobra"

	"github.com/redjax/kstable/internal/config"
	updateservice "github.com/redjax/kstable/internal/services/updateService"
)

// NewUpdateCommand returns the update command, the core of the CLI.
func NewUpdateCommand() *cobra.Command {
	var (
		cherryPick    bool
		merge         bool
		fetchOnly     bool
		latest        bool
		printLatest   bool
		backup        bool
		kernelFolder  string
		targetVersion string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Sync a kernel source tree with upstream linux-stable",
		Long: `Fetch release tags from the upstream linux-stable repository, work out the
target version for the tree, then cherry-pick or merge the version range.

By default the tree is advanced one sublevel at a time; pass --latest to jump
to the newest release of the current line, or --version for a specific one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			if err := config.LoadConfig(cmd.Flags(), cfgFile); err != nil {
				return err
			}

			var cfg config.UpdateConfig
			if err := config.K.Unmarshal("", &cfg); err != nil {
				return err
			}

			// Override config with CLI flags if set
			if cherryPick && merge {
				return config.ErrBothMethods
			}
			if cherryPick {
				cfg.Method = config.MethodCherryPick
			}
			if merge {
				cfg.Method = config.MethodMerge
			}

			if latest && targetVersion != "" {
				return config.ErrConflictingModes
			}
			cfg.Mode = config.ModeOneStep
			if latest {
				cfg.Mode = config.ModeLatest
			}
			if targetVersion != "" {
				cfg.Mode = config.ModeExplicit
				cfg.TargetVersion = targetVersion
			}

			cfg.FetchOnly = fetchOnly
			cfg.PrintLatest = printLatest
			if kernelFolder != "" {
				cfg.KernelFolder = kernelFolder
			}
			if cmd.Flags().Changed("backup") {
				cfg.Backup = backup
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			return updateservice.Run(&cfg)
		},
	}

	cmd.Flags().BoolVarP(&cherryPick, "cherry-pick", "c", false, "Apply the update by cherry-picking the version range")
	cmd.Flags().BoolVarP(&merge, "merge", "m", false, "Apply the update by merging the target tag")
	cmd.Flags().BoolVarP(&fetchOnly, "fetch-only", "f", false, "Only fetch upstream tags, then exit")
	cmd.Flags().StringVarP(&kernelFolder, "kernel-folder", "k", "", "Path to the kernel source tree (default: current directory)")
	cmd.Flags().BoolVarP(&latest, "latest", "l", false, "Update to the latest release of the current line")
	cmd.Flags().StringVarP(&targetVersion, "version", "v", "", "Update to a specific version, e.g. 6.1.42")
	cmd.Flags().BoolVarP(&printLatest, "print-latest", "p", false, "Print the current and latest versions, then exit")
	cmd.Flags().BoolVar(&backup, "backup", false, "Create a backup branch at HEAD before applying")

	return cmd
}
