package sanitizer

import (
	"strings"
	"unicode"
)

// SafeRedirect returns target when it is a relative path on this origin and fallback otherwise.
//
// Accepted targets start with a single "/". Protocol-relative ("//host"),
// backslash ("/\host") and absolute URLs are rejected, as is anything holding
// control characters, which browsers strip before resolving the URL.
func SafeRedirect(target, fallback string) string {
	if !strings.HasPrefix(target, "/") {
		return fallback
	}
	if strings.HasPrefix(target, "//") || strings.HasPrefix(target, `/\`) {
		return fallback
	}
	if strings.ContainsFunc(target, unicode.IsControl) {
		return fallback
	}
	return target
}
