package media

import "regexp"

// markerRegex matches the first season/episode marker in a string.
// The digit groups are kept as written: "s1e1" and "s01e01" produce
// different tokens.
var markerRegex = regexp.MustCompile(`(?i)s(\d+)e(\d+)`)

// Marker holds the season and episode digit tokens from a filename.
// Tokens are opaque strings, never normalized to integers, so comparison
// is textual: "01" != "1".
type Marker struct {
	Season  string
	Episode string
}

// ExtractMarker searches s case-insensitively for an s<digits>e<digits>
// substring and returns the two digit tokens. The second return value is
// false when no marker exists; the zero Marker is returned in that case.
func ExtractMarker(s string) (Marker, bool) {
	m := markerRegex.FindStringSubmatch(s)
	if m == nil {
		return Marker{}, false
	}
	return Marker{Season: m[1], Episode: m[2]}, true
}
