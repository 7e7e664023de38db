package web

import (
	"net/http"
	"strings"
)

// isHTMX reports whether the request wants a fragment. History restores
// need the full page even though htmx sends them.
func isHTMX(r *http.Request) bool {
	if strings.EqualFold(r.Header.Get("HX-History-Restore-Request"), "true") {
		return false
	}
	return strings.EqualFold(r.Header.Get("HX-Request"), "true")
}
