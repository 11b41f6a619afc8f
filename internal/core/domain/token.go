package domain

import "strings"

const (
	// TokenStorageKey is the storage key the session token is persisted under.
	TokenStorageKey = "token"

	// envKeyMarker shows up when environment files get concatenated into the
	// token value; everything from the marker on is dropped.
	envKeyMarker = "SUPABASE_ANON_KEY"
	bearerPrefix = "Bearer "
)

// NormalizeToken cleans a raw credential before it is stored or sent:
// whitespace is trimmed, anything after the first newline or after the
// SUPABASE_ANON_KEY marker is cut off, and a "Bearer " prefix is removed.
// It reports false when nothing usable is left.
//
// The cleaning pass is repeated until it no longer changes the value, so
// NormalizeToken(NormalizeToken(x)) == NormalizeToken(x) holds even when
// stripping the prefix uncovers another marker.
func NormalizeToken(raw string) (string, bool) {
	clean := cleanOnce(raw)
	for {
		next := cleanOnce(clean)
		if next == clean {
			break
		}
		clean = next
	}
	return clean, clean != ""
}

func cleanOnce(raw string) string {
	clean := strings.TrimSpace(raw)

	if before, _, found := strings.Cut(clean, "\n"); found {
		clean = strings.TrimSpace(before)
	}

	if before, _, found := strings.Cut(clean, envKeyMarker); found {
		clean = strings.TrimSpace(before)
	}

	if strings.Contains(clean, bearerPrefix) {
		clean = strings.TrimSpace(strings.Replace(clean, bearerPrefix, "", 1))
	}

	return clean
}
