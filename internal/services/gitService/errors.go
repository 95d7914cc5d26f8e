package gitservice

import (
	"errors"
)

// ErrNotGitRepo is returned when path is not a git repository
var ErrNotGitRepo = errors.New("path is not a git repository")

// ErrGitNotInstalled is returned when no git binary is found in PATH
var ErrGitNotInstalled = errors.New("git is not installed or not found in PATH")
