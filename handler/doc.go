// Package handler provides type-safe HTTP request handling for the console's
// pages and form endpoints.
//
// Handlers are generic functions that receive a bound request struct and
// return a Response. Wrap turns them into http.HandlerFunc values that chi can
// route:
//
//	type Credentials struct {
//		Email      string `form:"email"`
//		Password   string `form:"password"`
//		RedirectTo string `form:"redirectTo" query:"redirectTo"`
//	}
//
//	func login(ctx handler.Context, req Credentials) handler.Response {
//		...
//		return handler.Redirect("/dashboard")
//	}
//
//	r.Post("/login", handler.Wrap(login,
//		handler.WithBinders[handler.Context, Credentials](binder.Query(), binder.Form()),
//		handler.WithErrorHandler[handler.Context, Credentials](errHandler),
//	))
//
// # Response Types
//
// Every response adapts to the kind of request it answers:
//
//   - Templ and TemplPartial render HTML for regular requests and a DataStar
//     element patch for DataStar requests. TemplResponse.WithStatus sets the
//     status of HTML responses.
//   - JSON and JSONError encode a body with an explicit status.
//   - Redirect answers 303 See Other, or an SSE redirect for DataStar.
//
// # DataStar
//
// IsDataStar recognizes requests issued by the DataStar client through the
// Datastar-Request header, an event-stream Accept header or the datastar query
// parameter. Context.SSE opens the event stream lazily because opening it
// commits the response headers.
//
// # Errors
//
// HTTPError pairs a status code with a message key. Binding failures are
// reported as ErrBadRequest or ErrUnsupportedMedia. NewErrorHandler builds
// the shared error handler: it logs at warn for 4xx and error for 5xx and
// renders a toast, a JSON body or the error page depending on the request.
package handler
