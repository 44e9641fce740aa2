// Package routing provides the daemon's top-level HTTP mux.
package routing

import (
	"net/http"
	"path"
	"strings"
)

// NormalizedServeMux is an http.ServeMux that normalizes request paths
// before dispatch, so clients sending doubled slashes or trailing slashes
// still reach the intended route.
type NormalizedServeMux struct {
	*http.ServeMux
}

// NewNormalizedServeMux creates a new normalizing mux.
func NewNormalizedServeMux() *NormalizedServeMux {
	return &NormalizedServeMux{http.NewServeMux()}
}

// ServeHTTP implements net/http.Handler.ServeHTTP.
func (nm *NormalizedServeMux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.Contains(r.URL.Path, "//") {
		r.URL.Path = path.Clean(r.URL.Path)
	}
	if len(r.URL.Path) > 1 && strings.HasSuffix(r.URL.Path, "/") {
		r.URL.Path = strings.TrimRight(r.URL.Path, "/")
	}

	nm.ServeMux.ServeHTTP(w, r)
}
