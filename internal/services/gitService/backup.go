package gitservice

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/google/uuid"
)

// CreateBackupBranch creates a branch at HEAD named after the given version
// string, so a conflicted update can be abandoned by resetting to it. The
// branch name carries a short random suffix to avoid collisions with
// earlier backups of the same version.
func CreateBackupBranch(version string) (string, error) {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	name := fmt.Sprintf("kstable/backup/%s-%s", version, suffix)

	cmd := exec.Command("git", "branch", name)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("could not create backup branch %s: %w\n%s", name, err, string(output))
	}

	return name, nil
}
