package parameters

import (
	"regexp"

	"golang.org/x/mod/semver"
)

// versionPrefix needs MAJOR.MINOR so weekly snapshot ids like "13w16a" do not
// parse as version 13.
var versionPrefix = regexp.MustCompile(`^(\d+\.\d+(?:\.\d+)?)(?:$|[^0-9A-Za-z.])`)

// canonicalVersion turns the dotted-numeric prefix of a version id into a
// semver string ("1.12.2-pre1" -> "v1.12.2").
func canonicalVersion(id string) (string, bool) {
	m := versionPrefix.FindStringSubmatch(id)
	if m == nil {
		return "", false
	}
	v := "v" + m[1]
	if !semver.IsValid(v) {
		return "", false
	}
	return v, true
}

// IsModern reports whether versionID uses the templated argument schema. Ids
// without a numeric prefix are treated as legacy.
func IsModern(versionID string) bool {
	v, ok := canonicalVersion(versionID)
	if !ok {
		return false
	}
	threshold, _ := canonicalVersion(ModernThreshold)
	return semver.Compare(v, threshold) >= 0
}
