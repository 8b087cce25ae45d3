// Package environment names the deployment environments the console runs in
// and carries the active one through request contexts so handlers and log
// records can tell development from production without extra parameters.
package environment
