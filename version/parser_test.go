package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReleaseOutput(t *testing.T) {
	p := NewParser()

	key := p.Parse([]byte("rustc 1.32.0 (9fda7c223 2019-01-16)\n"))
	require.NotNil(t, key)
	require.NotNil(t, key.Version)
	assert.Equal(t, "1.32.0", key.Version.String())
	assert.Equal(t, "2019-01-16", key.Date)
}

func TestParseDevBuildWithoutDescriptor(t *testing.T) {
	p := NewParser()

	key := p.Parse([]byte("rustc 1.35.0-dev\n"))
	require.NotNil(t, key)
	require.NotNil(t, key.Version)
	assert.Equal(t, "1.35.0-dev", key.Version.String())
	assert.Equal(t, "", key.Date)
}

func TestParseNightlyOutput(t *testing.T) {
	p := NewParser()

	key := p.Parse([]byte("rustfmt 1.0.0-nightly (00e8a06 2019-02-24)\n"))
	require.NotNil(t, key)
	require.NotNil(t, key.Version)
	assert.Equal(t, "1.0.0-nightly", key.Version.String())
	assert.Equal(t, "2019-02-24", key.Date)
}

func TestParseUnrecognizableOutput(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "   \n\t\n"},
		{"command not found", "bash: rustc: command not found\n"},
		{"plain not found", "command not found\n"},
		{"unrelated prose", "The quick brown fox jumps over the lazy dog\n"},
		{"usage text", "Usage: tool [OPTIONS]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if key := p.Parse([]byte(tt.input)); key != nil {
				t.Errorf("Parse(%q) = %+v, want nil", tt.input, key)
			}
		})
	}
}

func TestParseInvalidUTF8(t *testing.T) {
	p := NewParser()

	// Looks like a version line but carries an invalid byte sequence; the
	// whole output falls back to empty and fails the match.
	input := append([]byte("rustc 1.32.0 "), 0xff, 0xfe, 0xfd)
	assert.Nil(t, p.Parse(input))
}

func TestParseMalformedVersionKeepsDate(t *testing.T) {
	p := NewParser()

	// The line shape matches but the version token is not valid semver. The
	// date still counts so the build is ranked low rather than discarded.
	key := p.Parse([]byte("rustc 1.32.0.5 (9fda7c223 2019-01-16)\n"))
	require.NotNil(t, key)
	assert.Nil(t, key.Version)
	assert.Equal(t, "2019-01-16", key.Date)
}

func TestParseVersionLineAfterNoise(t *testing.T) {
	p := NewParser()

	key := p.Parse([]byte("warning: something unrelated\nrustc 1.40.0 (73528e339 2019-12-16)\n"))
	require.NotNil(t, key)
	require.NotNil(t, key.Version)
	assert.Equal(t, "1.40.0", key.Version.String())
	assert.Equal(t, "2019-12-16", key.Date)
}
