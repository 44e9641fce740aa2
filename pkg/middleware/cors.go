// Package middleware provides HTTP middleware for the daemon's API surface.
package middleware

import (
	"net/http"
	"os"
	"strings"
)

// CORS wraps next with cross-origin handling for browser clients. When
// allowedOrigins is empty, the MODELPICKD_ORIGINS environment variable
// (comma-separated) is consulted; if that too is unset, no origin is
// allowed and the handler is returned unwrapped. The single entry "*"
// allows every origin. Preflight OPTIONS requests are answered only for
// allowed origins; others fall through to the router.
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = originsFromEnvironment()
	}
	if allowedOrigins == nil {
		return next
	}

	allowAll := len(allowedOrigins) == 1 && allowedOrigins[0] == "*"
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}
	originAllowed := func(origin string) bool {
		if allowAll {
			return true
		}
		_, ok := allowed[origin]
		return ok
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}

		if r.Method == http.MethodOptions {
			if origin == "" || !originAllowed(origin) {
				// Not a preflight we recognize; let the router respond.
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST")
			w.Header().Set("Access-Control-Allow-Headers", "*")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// originsFromEnvironment reads allowed origins from MODELPICKD_ORIGINS,
// returning nil when none are configured.
func originsFromEnvironment() (origins []string) {
	value := os.Getenv("MODELPICKD_ORIGINS")
	if value == "" {
		return nil
	}
	for _, origin := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
