// Package dashboard serves the analytics overview page. It expects the
// signed-in auth.User in the request context, which account.RequireUser
// provides, and renders the figures from svc/dashboard inside the app shell.
package dashboard
