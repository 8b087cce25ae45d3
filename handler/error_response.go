package handler

import "net/http"

type errorResponse struct {
	err error
}

// Render writes nothing and hands the error back to Wrap, which passes it to
// the configured error handler.
func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error returns a response that fails with err. Use HTTPError values to pick
// the status the error handler renders.
func Error(err error) Response {
	return errorResponse{err: err}
}
