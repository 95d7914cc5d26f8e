package kernelservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Version
		wantErr bool
	}{
		{name: "full version", input: "4.9.100", want: Version{4, 9, 100}},
		{name: "no sublevel", input: "6.1", want: Version{6, 1, 0}},
		{name: "tag form", input: "v6.1.42", want: Version{6, 1, 42}},
		{name: "trailing newline", input: "5.15.8\n", want: Version{5, 15, 8}},
		{name: "empty", input: "", wantErr: true},
		{name: "single field", input: "6", wantErr: true},
		{name: "too many fields", input: "6.1.2.3", wantErr: true},
		{name: "rc tag", input: "6.2-rc1", wantErr: true},
		{name: "negative", input: "6.-1.2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersion(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVersionFields(t *testing.T) {
	v, err := ParseVersion("4.9.100")
	require.NoError(t, err)

	assert.Equal(t, "4.9", v.MajorMinor())
	assert.Equal(t, 100, v.Sublevel)
	assert.Equal(t, "4.9.100", v.String())
}

// One-step target computation: 4.9.100 advances to 4.9.101.
func TestNext(t *testing.T) {
	v := Version{Major: 4, Minor: 9, Sublevel: 100}

	assert.Equal(t, Version{Major: 4, Minor: 9, Sublevel: 101}, v.Next())
}

// A ".0" release is tagged upstream without the trailing sublevel, so Tag
// must omit it.
func TestTagNormalizesZeroSublevel(t *testing.T) {
	assert.Equal(t, "v6.1", Version{Major: 6, Minor: 1}.Tag())
	assert.Equal(t, "v6.1.5", Version{Major: 6, Minor: 1, Sublevel: 5}.Tag())
}

func TestSameLine(t *testing.T) {
	base := Version{Major: 6, Minor: 1, Sublevel: 3}

	assert.True(t, base.SameLine(Version{Major: 6, Minor: 1, Sublevel: 44}))
	assert.False(t, base.SameLine(Version{Major: 6, Minor: 10, Sublevel: 3}))
	assert.False(t, base.SameLine(Version{Major: 5, Minor: 1, Sublevel: 3}))
}

func TestRangeSpec(t *testing.T) {
	tests := []struct {
		name    string
		current Version
		target  Version
		want    string
	}{
		{
			name:    "mid-line step",
			current: Version{6, 1, 5},
			target:  Version{6, 1, 9},
			want:    "v6.1.5..v6.1.9",
		},
		{
			name:    "zero sublevel lower bound omits .0",
			current: Version{6, 1, 0},
			target:  Version{6, 1, 1},
			want:    "v6.1..v6.1.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RangeSpec(tt.current, tt.target))
		})
	}
}
