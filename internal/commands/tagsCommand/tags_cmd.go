package tagscommand

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/redjax/kstable/internal/services/gitService/tagsService"
	pathutil "github.com/redjax/kstable/internal/utils/path"
)

// NewTagsCommand returns the tags command.
func NewTagsCommand() *cobra.Command {
	var (
		kernelFolder string
		line         string
		limit        int
		interactive  bool
	)

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List upstream stable tags for a kernel release line",
		Long:  "Show the fetched linux-stable release tags for the tree's major.minor line (or --line), newest first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			folder := kernelFolder
			if folder == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				folder = wd
			}

			folder, err := pathutil.ExpandAbs(folder)
			if err != nil {
				return err
			}

			return tagsService.RunTagsList(tagsService.Options{
				RepoPath:    folder,
				Line:        line,
				Limit:       limit,
				Interactive: interactive,
			})
		},
	}

	cmd.Flags().StringVarP(&kernelFolder, "kernel-folder", "k", "", "Path to the kernel source tree (default: current directory)")
	cmd.Flags().StringVar(&line, "line", "", "Release line to list, e.g. 6.1 (default: the tree's own line)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 30, "Maximum number of tags to show (0 for all)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse tags in an interactive table")

	return cmd
}
