// Package sanitizer cleans user-supplied values before they reach storage,
// logs or response headers.
//
// NormalizeEmail canonicalises addresses used as lookup keys. MaskEmail hides
// the local part for log output. SafeRedirect restricts post-login redirect
// targets to same-origin relative paths:
//
//	sanitizer.SafeRedirect("/settings", "/")       // "/settings"
//	sanitizer.SafeRedirect("//evil.com", "/")      // "/"
//	sanitizer.SafeRedirect("https://evil.com", "/") // "/"
package sanitizer
