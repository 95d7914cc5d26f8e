package kernelservice

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a stable kernel release number (major.minor.sublevel).
type Version struct {
	Major    int
	Minor    int
	Sublevel int
}

// ParseVersion parses "X.Y.Z" or "X.Y" into a Version. A missing sublevel
// means sublevel 0. A leading "v" (tag form) is accepted and stripped.
func ParseVersion(s string) (Version, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "v")
	if raw == "" {
		return Version{}, fmt.Errorf("empty version string")
	}

	fields := strings.Split(raw, ".")
	if len(fields) < 2 || len(fields) > 3 {
		return Version{}, fmt.Errorf("invalid kernel version %q", s)
	}

	var parts [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("invalid kernel version %q", s)
		}
		parts[i] = n
	}

	return Version{Major: parts[0], Minor: parts[1], Sublevel: parts[2]}, nil
}

// String returns the full dotted form, e.g. "6.1.0".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Sublevel)
}

// MajorMinor returns the release line, e.g. "6.1".
func (v Version) MajorMinor() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Tag returns the upstream tag name for this version. Upstream tags a ".0"
// release without the trailing sublevel (v6.1, not v6.1.0), so Tag omits a
// zero sublevel.
func (v Version) Tag() string {
	if v.Sublevel == 0 {
		return "v" + v.MajorMinor()
	}
	return "v" + v.String()
}

// Next returns the next sublevel release on the same line.
func (v Version) Next() Version {
	return Version{Major: v.Major, Minor: v.Minor, Sublevel: v.Sublevel + 1}
}

// SameLine reports whether both versions are on the same major.minor line.
func (v Version) SameLine(o Version) bool {
	return v.Major == o.Major && v.Minor == o.Minor
}

// RangeSpec renders the tag range handed to git, e.g. "v6.1.5..v6.1.9".
func RangeSpec(current, target Version) string {
	return current.Tag() + ".." + target.Tag()
}
