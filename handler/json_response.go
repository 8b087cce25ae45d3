package handler

import (
	"encoding/json"
	"net/http"
)

// ErrorDetail is the body of JSON error responses.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

// jsonResponse implements Response for JSON rendering
type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	body, err := json.Marshal(j.body)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	_, err = w.Write(append(body, '\n'))
	return err
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// JSON encodes v as the response body with status 200 unless overridden.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusOK,
		body:   v,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// JSONError renders err as {"error":{"code":...,"message":...}}.
// HTTPError values keep their status and key; anything else is a 500.
func JSONError(err error, opts ...JSONOption) Response {
	status, detail := http.StatusInternalServerError, ErrorDetail{
		Code:    ErrInternalServerError.Key,
		Message: http.StatusText(http.StatusInternalServerError),
	}

	if httpErr, ok := asHTTPError(err); ok {
		status = httpErr.Code
		detail = ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	}

	return JSON(map[string]ErrorDetail{"error": detail}, append([]JSONOption{WithJSONStatus(status)}, opts...)...)
}
