// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a well-formed inbound X-Request-ID header (1 to 128
// characters of letters, digits, "-" and "_") and otherwise generates a UUID.
// The id is stored in the request context, mirrored into chi's
// middleware.RequestIDKey and echoed in the response header.
//
// LoggerExtractor plugs into logger.WithContextExtractors so every record
// written with a request context carries "request_id":
//
//	log := logger.New(
//		logger.WithEnvironment(env, "acme-console"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
package requestid
