package http

import (
	"net/http"
	"strings"
)

// corsMethods lists the methods of the venue resource.
const corsMethods = "GET, POST, PUT, DELETE, OPTIONS"

// WithCORS adds CORS headers for browser based venue front-ends. An empty
// allow-list or a "*" entry admits any origin; otherwise the request Origin is
// reflected only when listed. Pre-flight requests are answered directly.
func WithCORS(allowedOrigins []string, next http.Handler) http.Handler {
	if next == nil {
		return nil
	}
	allowAll := false
	allowed := map[string]bool{}
	for _, origin := range allowedOrigins {
		switch origin = strings.TrimSpace(origin); origin {
		case "":
		case "*":
			allowAll = true
		default:
			allowed[origin] = true
		}
	}
	if len(allowed) == 0 {
		allowAll = true
	}
	return withCORS(allowAll, allowed, next)
}

func withCORS(allowAll bool, allowed map[string]bool, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		switch {
		case origin == "" || allowAll:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case allowed[origin]:
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		default:
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Access-Control-Allow-Methods", corsMethods)
		reqHeaders := r.Header.Get("Access-Control-Request-Headers")
		if reqHeaders == "" {
			reqHeaders = "Content-Type"
		}
		w.Header().Set("Access-Control-Allow-Headers", reqHeaders)
		w.Header().Set("Access-Control-Max-Age", "600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
