// Package logger builds *slog.Logger values for the console and keeps
// attribute keys consistent across packages.
//
// New takes functional options for format, level, output and static
// attributes. WithEnvironment picks sensible defaults per deployment
// environment. Context extractors registered with WithContextExtractors run
// on every record, which is how request ids and the environment end up in
// request-scoped log lines:
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "acme-console"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
// Identifiers that point at a person (user ids, session ids) are never logged
// in clear. Use Subject, which records a short hash, and Email, which masks
// the local part.
//
// Middleware logs each HTTP request once it completes.
package logger
