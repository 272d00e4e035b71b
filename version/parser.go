package version

import (
	"regexp"
	"unicode/utf8"

	"github.com/Masterminds/semver"
)

// versionPattern recognizes the version line rustc-style tools print:
//
//	rustc 1.32.0 (9fda7c223 2019-01-16)
//	rustfmt 1.35.0-dev
//
// Group 1 captures the version token, group 2 the optional build date from
// the parenthesized descriptor. Local and dev builds legitimately omit the
// descriptor, so group 2 is optional.
const versionPattern = `(?m)^\s*[A-Za-z][A-Za-z0-9_.-]*\s+(\d+\.\d+\.\d+\S*)(?:\s+\(\S+\s+(\d{4}-\d{2}-\d{2})\))?`

// Parser extracts version Keys from raw version-query output. It owns its
// compiled pattern; construct one and reuse it across probes.
type Parser struct {
	re *regexp.Regexp
}

// NewParser compiles the version pattern.
func NewParser() *Parser {
	return &Parser{re: regexp.MustCompile(versionPattern)}
}

// Parse extracts a Key from raw subprocess output. It returns nil when the
// output carries no recognizable "name version" line at all (empty output,
// shell error messages, unrelated prose). A line that matches but whose
// version token is not valid semver still yields a Key: the version is left
// nil while a captured date is kept, so a malformed build can at least be
// ranked by date instead of being thrown away entirely.
func (p *Parser) Parse(out []byte) *Key {
	if !utf8.Valid(out) {
		// Undecodable output is treated as empty, which fails the match.
		out = nil
	}

	m := p.re.FindSubmatch(out)
	if m == nil {
		return nil
	}

	key := &Key{Date: string(m[2])}
	if v, err := semver.NewVersion(string(m[1])); err == nil {
		key.Version = v
	}
	return key
}
