package version

import (
	"testing"

	"github.com/Masterminds/semver"
	"github.com/stretchr/testify/require"
)

func mustVersion(t *testing.T, s string) *semver.Version {
	t.Helper()
	v, err := semver.NewVersion(s)
	require.NoError(t, err)
	return v
}

func TestKeyCompareVersionDominatesDate(t *testing.T) {
	newer := NewKey(mustVersion(t, "1.2.3"), "2018-01-01")
	older := NewKey(mustVersion(t, "1.1.0"), "2019-12-31")

	if newer.Compare(older) <= 0 {
		t.Errorf("expected 1.2.3 to outrank 1.1.0 regardless of date")
	}
	if older.Compare(newer) >= 0 {
		t.Errorf("expected 1.1.0 to rank below 1.2.3")
	}
}

func TestKeyCompareEqualVersionsFallBackToDate(t *testing.T) {
	v := "1.0.0-nightly"
	a := NewKey(mustVersion(t, v), "2019-04-17")
	b := NewKey(mustVersion(t, v), "2019-04-20")

	if b.Compare(a) <= 0 {
		t.Errorf("expected date 2019-04-20 to outrank 2019-04-17")
	}
	if a.Compare(a) != 0 {
		t.Errorf("expected identical keys to compare equal")
	}
}

func TestKeyCompareAbsentVersionSortsLowest(t *testing.T) {
	absent := NewKey(nil, "2019-04-20")
	present := NewKey(mustVersion(t, "1.1.0"), "2019-04-20")

	if absent.Compare(present) >= 0 {
		t.Errorf("expected absent version to rank below 1.1.0")
	}
	if present.Compare(absent) <= 0 {
		t.Errorf("expected 1.1.0 to rank above absent version")
	}
}

func TestKeyCompareBothAbsentUsesDate(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Key
		expect int
	}{
		{"empty dates equal", NewKey(nil, ""), NewKey(nil, ""), 0},
		{"empty date loses", NewKey(nil, ""), NewKey(nil, "2019-01-10"), -1},
		{"later date wins", NewKey(nil, "2019-02-24"), NewKey(nil, "2019-02-20"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.expect {
				t.Errorf("Compare() = %d, want %d", got, tt.expect)
			}
		})
	}
}

func TestKeyComparePreReleaseBelowRelease(t *testing.T) {
	nightly := NewKey(mustVersion(t, "1.32.0-nightly"), "2019-02-24")
	release := NewKey(mustVersion(t, "1.32.0"), "2019-01-16")

	if nightly.Compare(release) >= 0 {
		t.Errorf("expected 1.32.0-nightly to rank below 1.32.0")
	}
}
