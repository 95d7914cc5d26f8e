package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	pathutil "github.com/redjax/kstable/internal/utils/path"
)

// DefaultUpstreamURL is the linux-stable mirror tags are fetched from when
// no override is configured.
const DefaultUpstreamURL = "https://git.kernel.org/pub/scm/linux/kernel/git/stable/linux.git"

// kernelMakefile is the build descriptor expected at the root of a kernel
// source tree.
const kernelMakefile = "Makefile"

var (
	ErrNoUpdateMethod   = errors.New("no update method selected, pass --cherry-pick or --merge")
	ErrBothMethods      = errors.New("--cherry-pick and --merge are mutually exclusive")
	ErrNotAKernelTree   = errors.New("kernel folder does not contain a kernel Makefile")
	ErrMissingFolder    = errors.New("kernel folder does not exist")
	ErrConflictingModes = errors.New("--latest and --version are mutually exclusive")
)

// UpdateMethod selects how the version range is applied to the tree.
type UpdateMethod int

const (
	MethodUnset UpdateMethod = iota
	MethodCherryPick
	MethodMerge
)

func (m UpdateMethod) String() string {
	switch m {
	case MethodCherryPick:
		return "cherry-pick"
	case MethodMerge:
		return "merge"
	default:
		return "unset"
	}
}

// UpdateMode selects how the target version is computed.
type UpdateMode int

const (
	// ModeOneStep advances the sublevel by one.
	ModeOneStep UpdateMode = iota
	// ModeLatest targets the newest upstream tag of the current line.
	ModeLatest
	// ModeExplicit uses the version given on the command line verbatim.
	ModeExplicit
)

func (m UpdateMode) String() string {
	switch m {
	case ModeLatest:
		return "latest"
	case ModeExplicit:
		return "explicit"
	default:
		return "one-step"
	}
}

// UpdateConfig carries everything the update pipeline needs for one run.
// It is populated once from flags/config/env and not mutated afterwards.
type UpdateConfig struct {
	KernelFolder string `koanf:"kernel_folder"`
	UpstreamURL  string `koanf:"upstream_url"`
	Backup       bool   `koanf:"backup"`

	Method        UpdateMethod `koanf:"-"`
	Mode          UpdateMode   `koanf:"-"`
	TargetVersion string       `koanf:"-"`
	FetchOnly     bool         `koanf:"-"`
	PrintLatest   bool         `koanf:"-"`
}

// Validate applies defaults and checks the config before the pipeline runs.
//
// The update method is only required when an update will actually be
// applied: --fetch-only and --print-latest short-circuit before the apply
// step, so neither needs --cherry-pick/--merge.
func (c *UpdateConfig) Validate() error {
	if c.UpstreamURL == "" {
		c.UpstreamURL = DefaultUpstreamURL
	}

	if c.KernelFolder == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("could not get current directory: %w", err)
		}
		c.KernelFolder = wd
	}

	folder, err := pathutil.ExpandAbs(c.KernelFolder)
	if err != nil {
		return fmt.Errorf("invalid kernel folder %q: %w", c.KernelFolder, err)
	}
	c.KernelFolder = folder

	info, err := os.Stat(c.KernelFolder)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrMissingFolder, c.KernelFolder)
	}

	if _, err := os.Stat(filepath.Join(c.KernelFolder, kernelMakefile)); err != nil {
		return fmt.Errorf("%w: %s", ErrNotAKernelTree, c.KernelFolder)
	}

	if c.Method == MethodUnset && !c.FetchOnly && !c.PrintLatest {
		return ErrNoUpdateMethod
	}

	return nil
}
