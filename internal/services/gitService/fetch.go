package gitservice

import (
	"fmt"
	"os/exec"
)

// FetchTags fetches all tags from the given remote URL into the repository
// in the current working directory. Output is captured and only surfaced on
// failure, so callers can wrap the fetch in a spinner.
func FetchTags(url string) error {
	if !CheckGitInstalled() {
		return ErrGitNotInstalled
	}

	cmd := exec.Command("git", "fetch", url, "--tags")

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git fetch %s failed: %w\n%s", url, err, string(output))
	}

	return nil
}
