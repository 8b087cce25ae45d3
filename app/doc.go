// Package app assembles the console: it opens the configured stores and
// wires the account and dashboard modules, static pages and health probes
// into one chi router.
//
// Routes:
//
//	GET       /           redirect to /dashboard or /login by session state
//	GET, POST /login      sign-in page and submission (signed-in users are redirected)
//	GET, POST /register   sign-up page and submission (signed-in users are redirected)
//	POST      /logout     end the session
//	GET       /dashboard  analytics overview (anonymous users are sent to login)
//	GET       /terms, /privacy
//	GET       /healthz, /readyz
package app
