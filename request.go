package alertbox

import (
	"net/http"
	"strings"
)

const (
	// DataStarAcceptHeader is the Accept header value sent by datastar.
	DataStarAcceptHeader = "text/event-stream"

	// DataStarQueryParam is the query parameter datastar uses for signals.
	DataStarQueryParam = "datastar"

	// HXRequest is the header set on every HTMX request.
	HXRequest = "HX-Request"
)

// IsDataStar reports whether r was issued by datastar and expects SSE.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	if r.URL.Query().Has(DataStarQueryParam) {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}

// IsHTMX reports whether r was issued by HTMX.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HXRequest) == "true"
}
