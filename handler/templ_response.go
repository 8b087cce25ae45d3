package handler

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption is an alias for datastar's PatchElementOption
type TemplOption = datastar.PatchElementOption

// WithTarget sets the target selector for where the component should be rendered
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component should be merged into the DOM
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplResponse renders a templ component as a DataStar patch or as HTML.
type TemplResponse struct {
	partial templ.Component
	full    templ.Component
	status  int
	options []datastar.PatchElementOption
}

// WithStatus sets the status code of the HTML response.
// DataStar patches are always sent with 200 because the client ignores
// event streams on error statuses.
func (t TemplResponse) WithStatus(code int) TemplResponse {
	t.status = code
	return t
}

// Render outputs the partial via SSE for DataStar or the full component as HTML.
// HTML is rendered into a buffer first so a failing component never leaves a
// half-written page behind.
func (t TemplResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.PatchElementTempl(t.partial, t.options...)
	}

	var buf bytes.Buffer
	if err := t.full.Render(r.Context(), &buf); err != nil {
		return err
	}

	status := t.status
	if status == 0 {
		status = http.StatusOK
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// Templ creates a response from a templ component with optional configuration.
// For DataStar requests, it renders via SSE with optional target and patch mode.
// For regular HTTP requests, it renders directly to the response.
//
// Simple usage:
//
//	return handler.Templ(views.TermsPage())
//
// With target selector:
//
//	return handler.Templ(
//		views.ErrorToast(msg),
//		handler.WithTarget("#toast-container"),
//		handler.WithPatchMode(handler.PatchPrepend),
//	)
func Templ(component templ.Component, opts ...TemplOption) TemplResponse {
	return TemplResponse{
		partial: component,
		full:    component,
		options: opts,
	}
}

// TemplPartial creates a response that renders differently for DataStar vs regular requests.
// For DataStar requests, it renders only the partial component via SSE for targeted updates.
// For regular requests, it renders the full component.
//
// Example:
//
//	form := views.LoginForm(params)
//	return handler.TemplPartial(form, views.LoginPage(params)).
//		WithStatus(http.StatusBadRequest)
func TemplPartial(partial, full templ.Component, opts ...TemplOption) TemplResponse {
	return TemplResponse{
		partial: partial,
		full:    full,
		options: opts,
	}
}
