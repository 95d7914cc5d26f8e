package tagsService

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	gitservice "github.com/redjax/kstable/internal/services/gitService"
	kernelservice "github.com/redjax/kstable/internal/services/kernelService"
)

// Options configures the tags listing.
type Options struct {
	RepoPath    string
	Line        string // major.minor override; empty means the tree's own line
	Limit       int
	Interactive bool
}

// RunTagsList shows the upstream release tags of one kernel line, newest
// first. Non-interactive output is a table on stdout; --interactive opens a
// scrollable table browser.
func RunTagsList(opts Options) error {
	line, err := resolveLine(opts)
	if err != nil {
		return err
	}

	tags, err := gitservice.StableTags(opts.RepoPath, line)
	if err != nil {
		return err
	}

	if len(tags) == 0 {
		return fmt.Errorf("no upstream tags found for the %s line", line.MajorMinor())
	}

	if opts.Limit > 0 && len(tags) > opts.Limit {
		tags = tags[:opts.Limit]
	}

	if opts.Interactive {
		return runTagsBrowser(line.MajorMinor(), tags)
	}

	printTagsTable(tags)

	return nil
}

func resolveLine(opts Options) (kernelservice.Version, error) {
	if opts.Line != "" {
		line, err := kernelservice.ParseVersion(opts.Line)
		if err != nil {
			return kernelservice.Version{}, fmt.Errorf("invalid release line %q: %w", opts.Line, err)
		}
		return line, nil
	}

	return kernelservice.CurrentVersion(opts.RepoPath)
}

func printTagsTable(tags []gitservice.TagInfo) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Tag", "Created", "Type", "Tagger", "Hash"})

	for _, tag := range tags {
		tw.AppendRow(table.Row{
			tag.Name,
			tag.Created.Format("2006-01-02 15:04"),
			tag.Type,
			tag.Tagger,
			tag.Hash,
		})
	}

	tw.SetStyle(table.StyleLight)
	tw.Render()
}
