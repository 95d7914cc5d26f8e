package gitservice

import (
	"os"
	"os/exec"
	"strings"
)

// IsGitRepo checks if the current working directory is part of a Git repository.
func IsGitRepo() (bool, error) {
	cmd := exec.Command("git", "rev-parse", "--is-inside-work-tree")

	output, err := cmd.Output()
	if err != nil {
		return false, ErrNotGitRepo
	}

	result := strings.TrimSpace(string(output))

	return result == "true", nil
}

func CheckGitInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// execCommand allows mocking for tests later if needed
var execCommand = func(name string, args ...string) *exec.Cmd {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd
}
