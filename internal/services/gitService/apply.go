package gitservice

import (
	"fmt"
)

// CherryPickRange applies every commit in the given tag range onto the
// current branch, commit by commit. On conflict the repository is left in
// git's in-progress cherry-pick state for manual resolution.
func CherryPickRange(rangeSpec string) error {
	cmd := execCommand("git", "cherry-pick", rangeSpec)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("cherry-pick of %s did not apply cleanly: %w", rangeSpec, err)
	}

	return nil
}

// MergeTag merges the given tag into the current branch without opening an
// editor for the commit message. On conflict the repository is left in
// git's in-progress merge state for manual resolution.
func MergeTag(tag string) error {
	cmd := execCommand("git", "merge", "--no-edit", tag)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("merge of %s did not apply cleanly: %w", tag, err)
	}

	return nil
}
