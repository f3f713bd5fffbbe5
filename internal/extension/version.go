package extension

import (
	"github.com/Masterminds/semver/v3"
)

// versionMatches reports whether the installed version satisfies the pinned
// one. Tags such as "latest" only match themselves, so a tag pin reinstalls
// on every launch and npm decides whether anything changes. Semver pins match
// equal versions regardless of spelling ("v1.2.0" and "1.2.0").
func versionMatches(installed, pinned string) bool {
	if installed == pinned {
		return true
	}
	iv, err := semver.StrictNewVersion(trimV(installed))
	if err != nil {
		return false
	}
	pv, err := semver.StrictNewVersion(trimV(pinned))
	if err != nil {
		return false
	}
	return iv.Equal(pv)
}

func trimV(v string) string {
	if len(v) > 0 && v[0] == 'v' {
		return v[1:]
	}
	return v
}
