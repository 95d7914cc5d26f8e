package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kernelTree creates a directory with a kernel-style Makefile at its root.
func kernelTree(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "Makefile"), []byte("VERSION = 6\nPATCHLEVEL = 1\nSUBLEVEL = 0\n"), 0644)
	require.NoError(t, err)

	return dir
}

func TestValidateDefaults(t *testing.T) {
	dir := kernelTree(t)

	cfg := &UpdateConfig{KernelFolder: dir, Method: MethodCherryPick}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultUpstreamURL, cfg.UpstreamURL)
	assert.Equal(t, dir, cfg.KernelFolder)
}

func TestValidateDefaultsToCwd(t *testing.T) {
	dir := kernelTree(t)
	t.Chdir(dir)

	cfg := &UpdateConfig{Method: MethodMerge}
	require.NoError(t, cfg.Validate())

	// macOS tempdirs resolve through symlinks, so compare the Makefile
	// rather than the literal path.
	_, err := os.Stat(filepath.Join(cfg.KernelFolder, "Makefile"))
	assert.NoError(t, err)
}

func TestValidateMissingFolder(t *testing.T) {
	cfg := &UpdateConfig{
		KernelFolder: filepath.Join(t.TempDir(), "nope"),
		Method:       MethodCherryPick,
	}

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrMissingFolder)
}

func TestValidateNotAKernelTree(t *testing.T) {
	cfg := &UpdateConfig{
		KernelFolder: t.TempDir(),
		Method:       MethodCherryPick,
	}

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrNotAKernelTree)
}

func TestValidateRequiresUpdateMethod(t *testing.T) {
	cfg := &UpdateConfig{KernelFolder: kernelTree(t)}

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrNoUpdateMethod)
}

// --fetch-only and --print-latest exit before the apply step, so neither
// requires an update method.
func TestValidateMethodNotRequiredForShortCircuits(t *testing.T) {
	t.Run("fetch-only", func(t *testing.T) {
		cfg := &UpdateConfig{KernelFolder: kernelTree(t), FetchOnly: true}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("print-latest", func(t *testing.T) {
		cfg := &UpdateConfig{KernelFolder: kernelTree(t), PrintLatest: true}
		assert.NoError(t, cfg.Validate())
	})
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "cherry-pick", MethodCherryPick.String())
	assert.Equal(t, "merge", MethodMerge.String())
	assert.Equal(t, "unset", MethodUnset.String())

	assert.Equal(t, "one-step", ModeOneStep.String())
	assert.Equal(t, "latest", ModeLatest.String())
	assert.Equal(t, "explicit", ModeExplicit.String())
}
