package updateservice

import (
	"errors"
	"fmt"
	"os"

	"github.com/redjax/kstable/internal/config"
	gitservice "github.com/redjax/kstable/internal/services/gitService"
	kernelservice "github.com/redjax/kstable/internal/services/kernelService"
	"github.com/redjax/kstable/internal/ui"
	"github.com/redjax/kstable/internal/utils/spinner"
)

var (
	// ErrAlreadyApplied is returned when the target release is already in the tree.
	ErrAlreadyApplied = errors.New("target version is already present in the tree")
	// ErrNotAvailable is returned when the target release has not been tagged upstream yet.
	ErrNotAvailable = errors.New("target version is not yet available upstream")
)

// Run executes one update pass over the kernel tree described by cfg:
// fetch upstream tags, work out current/latest/target versions, then apply
// the selected method over the version range.
//
// Run only returns errors; deciding the process exit status is left to the
// command layer.
func Run(cfg *config.UpdateConfig) error {
	if !gitservice.CheckGitInstalled() {
		return gitservice.ErrGitNotInstalled
	}

	if err := os.Chdir(cfg.KernelFolder); err != nil {
		return fmt.Errorf("could not change into kernel folder %s: %w", cfg.KernelFolder, err)
	}

	if ok, err := gitservice.IsGitRepo(); err != nil || !ok {
		return fmt.Errorf("%s: %w", cfg.KernelFolder, gitservice.ErrNotGitRepo)
	}

	stop := spinner.StartSpinner("Fetching stable tags...")
	err := gitservice.FetchTags(cfg.UpstreamURL)
	stop()
	if err != nil {
		return err
	}
	fmt.Println(ui.Success("Fetched stable tags from upstream."))

	if cfg.FetchOnly {
		return nil
	}

	current, err := kernelservice.CurrentVersion(cfg.KernelFolder)
	if err != nil {
		return err
	}

	latest, err := gitservice.LatestTag(cfg.KernelFolder, current)
	if err != nil {
		return err
	}

	fmt.Printf("Current kernel version: %s\n", ui.Heading(current.String()))
	fmt.Printf("Latest %s release: %s\n", current.MajorMinor(), ui.Heading(latest.Version.String()))

	if cfg.PrintLatest {
		return nil
	}

	target, err := resolveTarget(cfg, current, latest.Version)
	if err != nil {
		return err
	}

	if err := checkRange(current, target, latest.Version); err != nil {
		return err
	}

	if cfg.Backup {
		name, err := gitservice.CreateBackupBranch(current.String())
		if err != nil {
			return err
		}
		fmt.Printf("Created backup branch %s\n", name)
	}

	switch cfg.Method {
	case config.MethodCherryPick:
		rangeSpec := kernelservice.RangeSpec(current, target)
		fmt.Printf("Cherry-picking %s...\n", rangeSpec)
		if err := gitservice.CherryPickRange(rangeSpec); err != nil {
			return fmt.Errorf("%w\nResolve the conflicts, then run 'git cherry-pick --continue' to finish the update", err)
		}
	case config.MethodMerge:
		fmt.Printf("Merging %s...\n", target.Tag())
		if err := gitservice.MergeTag(target.Tag()); err != nil {
			return fmt.Errorf("%w\nResolve the conflicts and commit the result, or run 'git merge --abort' to back out", err)
		}
	default:
		return config.ErrNoUpdateMethod
	}

	fmt.Println(ui.Success(fmt.Sprintf("Kernel tree updated to %s via %s.", target.Tag(), cfg.Method)))

	return nil
}

// resolveTarget computes the target version for the selected update mode.
func resolveTarget(cfg *config.UpdateConfig, current, latest kernelservice.Version) (kernelservice.Version, error) {
	switch cfg.Mode {
	case config.ModeExplicit:
		target, err := kernelservice.ParseVersion(cfg.TargetVersion)
		if err != nil {
			return kernelservice.Version{}, fmt.Errorf("invalid target version %q: %w", cfg.TargetVersion, err)
		}
		return target, nil
	case config.ModeLatest:
		return latest, nil
	default:
		return current.Next(), nil
	}
}

// checkRange validates that the target lies strictly between the current and
// latest releases. Only the sublevel is compared: tag enumeration already
// restricts candidates to the current major.minor line.
func checkRange(current, target, latest kernelservice.Version) error {
	if target.Sublevel <= current.Sublevel {
		return fmt.Errorf("%w: tree is at %s, requested %s", ErrAlreadyApplied, current, target)
	}

	if target.Sublevel > latest.Sublevel {
		return fmt.Errorf("%w: requested %s but the latest release is %s", ErrNotAvailable, target, latest)
	}

	return nil
}
