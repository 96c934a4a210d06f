// Package slug derives URL identifiers and display titles from names.
package slug

import (
	"regexp"
	"strings"
)

// SyncPrefix namespaces slugs of projects imported from GitHub.
// Manually authored projects never carry it.
const SyncPrefix = "github-"

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	wordStart       = regexp.MustCompile(`\b\w`)
)

// Make lowercases s and joins its alphanumeric runs with single hyphens.
func Make(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ForRepository returns the sync-namespaced slug for a repository name.
func ForRepository(name string) string {
	return SyncPrefix + Make(name)
}

// IsSynced reports whether s lives in the sync namespace.
func IsSynced(s string) bool {
	return strings.HasPrefix(s, SyncPrefix)
}

// Title turns a repository name such as "car-rental_system" into "Car Rental System".
func Title(name string) string {
	t := strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return wordStart.ReplaceAllStringFunc(t, strings.ToUpper)
}
