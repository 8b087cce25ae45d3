package binder

import "net/http"

// Query binds URL query parameters into fields tagged `query:"name"`.
// It applies to every request method.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}
