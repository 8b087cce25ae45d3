// Package cookie manages HTTP cookies with consistent default attributes
// (Path=/, HttpOnly, SameSite=Lax) and optional AES-256-GCM encryption.
//
// Encrypted cookies carry the session token and one-shot flash messages.
// Secrets must be at least 32 characters; listing several in COOKIE_SECRETS
// enables rotation because decryption tries each of them.
//
//	mgr, err := cookie.New([]string{secret}, cookie.WithSecure(true))
//	if err := mgr.SetEncrypted(w, "sid", token); err != nil { ... }
//	token, err := mgr.GetEncrypted(r, "sid")
package cookie
