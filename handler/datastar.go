package handler

import (
	"mime"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

// DataStar detection constants
const (
	// DataStarRequestHeader is set to "true" by the DataStar client on every backend action
	DataStarRequestHeader = "Datastar-Request"

	// DataStarAcceptHeader is the Accept header value that indicates a DataStar request
	DataStarAcceptHeader = "text/event-stream"

	// DataStarQueryParam is the query parameter used by DataStar for signals on GET requests
	DataStarQueryParam = "datastar"
)

// Patch mode aliases for convenience
const (
	PatchOuter   = datastar.ElementPatchModeOuter   // Morphs element (default)
	PatchInner   = datastar.ElementPatchModeInner   // Replace inner HTML
	PatchReplace = datastar.ElementPatchModeReplace // Replace entire element
	PatchRemove  = datastar.ElementPatchModeRemove  // Remove element
	PatchAppend  = datastar.ElementPatchModeAppend  // Append inside element
	PatchPrepend = datastar.ElementPatchModePrepend // Prepend inside element
	PatchBefore  = datastar.ElementPatchModeBefore  // Insert before element
	PatchAfter   = datastar.ElementPatchModeAfter   // Insert after element
)

// IsDataStar checks if the request was issued by the DataStar client and
// therefore expects a Server-Sent Events response.
func IsDataStar(r *http.Request) bool {
	if strings.EqualFold(r.Header.Get(DataStarRequestHeader), "true") {
		return true
	}

	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}

	return r.URL.Query().Has(DataStarQueryParam)
}

// WantsJSON reports whether a non-DataStar client asked for a JSON response.
// DataStar also lists application/json in Accept, so it is excluded first.
func WantsJSON(r *http.Request) bool {
	if IsDataStar(r) {
		return false
	}
	for part := range strings.SplitSeq(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if mediaType == "application/json" || strings.HasSuffix(mediaType, "+json") {
			return true
		}
	}
	return false
}

// NewSSE creates a Server-Sent Event generator for DataStar responses.
// The generator writes the SSE headers immediately.
func NewSSE(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	return datastar.NewSSE(w, r)
}
