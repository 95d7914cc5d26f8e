package kernelservice

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// execCommand allows mocking for tests later if needed
var execCommand = func(dir, name string, args ...string) *exec.Cmd {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir

	return cmd
}

// CurrentVersion reads the version of the kernel source tree at dir.
//
// The build system is the authority: `make -s kernelversion` prints the
// dotted version string. When make is unavailable or fails, fall back to
// scanning VERSION/PATCHLEVEL/SUBLEVEL from the tree's top-level Makefile.
func CurrentVersion(dir string) (Version, error) {
	output, err := execCommand(dir, "make", "-s", "kernelversion").Output()
	if err == nil {
		v, perr := ParseVersion(string(output))
		if perr == nil {
			return v, nil
		}
	}

	v, err := versionFromMakefile(dir)
	if err != nil {
		return Version{}, fmt.Errorf("could not read kernel version from %s: %w", dir, err)
	}

	return v, nil
}

// versionFromMakefile parses the VERSION, PATCHLEVEL and SUBLEVEL variables
// from the kernel's top-level Makefile.
func versionFromMakefile(dir string) (Version, error) {
	f, err := os.Open(filepath.Join(dir, "Makefile"))
	if err != nil {
		return Version{}, err
	}
	defer f.Close()

	fields := map[string]*int{}
	var v Version
	fields["VERSION"] = &v.Major
	fields["PATCHLEVEL"] = &v.Minor
	fields["SUBLEVEL"] = &v.Sublevel

	found := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() && found < len(fields) {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok {
			continue
		}

		dst, want := fields[strings.TrimSpace(key)]
		if !want {
			continue
		}

		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return Version{}, fmt.Errorf("malformed Makefile version variable %q", key)
		}

		*dst = n
		found++
	}
	if err := scanner.Err(); err != nil {
		return Version{}, err
	}

	if found < len(fields) {
		return Version{}, fmt.Errorf("Makefile is missing kernel version variables")
	}

	return v, nil
}
