package gitservice

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	kernelservice "github.com/redjax/kstable/internal/services/kernelService"
)

// TagInfo describes one upstream release tag.
type TagInfo struct {
	Name    string
	Hash    string
	Created time.Time
	Tagger  string
	Type    string // "annotated" or "lightweight"
	Version kernelservice.Version
}

// StableTags lists the release tags of one major.minor line in the
// repository at repoPath, newest-created first.
//
// Ordering is by tag creation time (tagger time for annotated tags, commit
// author time for lightweight ones), not by numeric version. Upstream tags
// releases in increasing order, so the most recently created tag is the
// latest release; keep this rule rather than a numeric sort.
func StableTags(repoPath string, line kernelservice.Version) ([]TagInfo, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, fmt.Errorf("could not open repository at %s: %w", repoPath, err)
	}

	tagRefs, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("could not list tags: %w", err)
	}

	var tags []TagInfo

	err = tagRefs.ForEach(func(ref *plumbing.Reference) error {
		name := strings.TrimPrefix(ref.Name().String(), "refs/tags/")

		ver, err := kernelservice.ParseVersion(name)
		if err != nil || !ver.SameLine(line) {
			// Not a release tag of this line (also skips rc tags etc.)
			return nil
		}

		tag := TagInfo{
			Name:    name,
			Hash:    ref.Hash().String()[:8],
			Version: ver,
		}

		// Try to get tag object for annotated tags
		tagObj, err := repo.TagObject(ref.Hash())
		if err == nil {
			tag.Type = "annotated"
			tag.Created = tagObj.Tagger.When
			tag.Tagger = tagObj.Tagger.Name
		} else {
			// Lightweight tag - points directly to commit
			tag.Type = "lightweight"
			commit, err := repo.CommitObject(ref.Hash())
			if err == nil {
				tag.Created = commit.Author.When
				tag.Tagger = commit.Author.Name
			}
		}

		tags = append(tags, tag)
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Sort tags by creation date (newest first)
	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].Created.After(tags[j].Created)
	})

	return tags, nil
}

// LatestTag returns the most recently created tag of the given line.
func LatestTag(repoPath string, line kernelservice.Version) (TagInfo, error) {
	tags, err := StableTags(repoPath, line)
	if err != nil {
		return TagInfo{}, err
	}

	if len(tags) == 0 {
		return TagInfo{}, fmt.Errorf("no upstream tags found for the %s line", line.MajorMinor())
	}

	return tags[0], nil
}
