package kernelservice

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeMakefile drops a minimal kernel-style Makefile into dir. It carries
// only the version variables, so `make kernelversion` fails and
// CurrentVersion exercises the Makefile fallback.
func writeMakefile(t *testing.T, dir, content string) {
	t.Helper()

	err := os.WriteFile(filepath.Join(dir, "Makefile"), []byte(content), 0644)
	require.NoError(t, err)
}

func TestCurrentVersionFromMakefile(t *testing.T) {
	dir := t.TempDir()
	writeMakefile(t, dir, "# SPDX-License-Identifier: GPL-2.0\nVERSION = 6\nPATCHLEVEL = 1\nSUBLEVEL = 42\nEXTRAVERSION =\nNAME = Curry Ramen\n")

	v, err := CurrentVersion(dir)
	require.NoError(t, err)

	assert.Equal(t, Version{Major: 6, Minor: 1, Sublevel: 42}, v)
}

func TestCurrentVersionZeroSublevel(t *testing.T) {
	dir := t.TempDir()
	writeMakefile(t, dir, "VERSION = 6\nPATCHLEVEL = 1\nSUBLEVEL = 0\n")

	v, err := CurrentVersion(dir)
	require.NoError(t, err)

	assert.Equal(t, Version{Major: 6, Minor: 1, Sublevel: 0}, v)
}

func TestCurrentVersionMissingVariables(t *testing.T) {
	dir := t.TempDir()
	writeMakefile(t, dir, "VERSION = 6\nPATCHLEVEL = 1\n")

	_, err := CurrentVersion(dir)
	require.Error(t, err)
}

func TestCurrentVersionNoMakefile(t *testing.T) {
	_, err := CurrentVersion(t.TempDir())
	require.Error(t, err)
}

func TestCurrentVersionMalformedValue(t *testing.T) {
	dir := t.TempDir()
	writeMakefile(t, dir, "VERSION = six\nPATCHLEVEL = 1\nSUBLEVEL = 0\n")

	_, err := CurrentVersion(dir)
	require.Error(t, err)
}
