// Package clientip resolves the address of the client behind a request and
// carries it through the context so log records can include it.
//
// Without proxy trust only RemoteAddr is used. With it, CF-Connecting-IP,
// X-Real-IP and the first X-Forwarded-For entry are checked first.
package clientip
