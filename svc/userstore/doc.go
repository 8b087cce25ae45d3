// Package userstore implements auth.PasswordStorage on PostgreSQL.
//
// The schema ships as embedded goose migrations; call Migrate once at startup.
// Emails are stored as given, so callers normalize them first, which
// auth.PasswordService does.
package userstore
