package adapter

import (
	"net/http"
	"strconv"
	"strings"
)

// Defaults applied for every CORSConfig field left at its zero value.
var (
	defaultCORSMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	defaultCORSHeaders = []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "X-Request-ID"}
)

// CORSConfig describes the CORS policy installed around the wrapped
// application. Zero-value fields fall back to the wildcard defaults, so
// DefaultCORS() yields the permissive policy.
type CORSConfig struct {
	Origin        string
	Methods       []string
	AllowHeaders  []string
	ExposeHeaders []string
	Credentials   bool
	MaxAge        int
}

// DefaultCORS returns the permissive policy: wildcard origin, the fixed
// method and header lists, no credentials.
func DefaultCORS() *CORSConfig {
	return &CORSConfig{}
}

// CORS returns middleware applying the policy to every request regardless of
// path. OPTIONS requests are answered with 204 before reaching any route.
// New installs it once at handler-creation time when Config.CORS is set; it
// is exported so the same application can carry the policy when served over
// a plain HTTP listener.
func CORS(c *CORSConfig) func(http.Handler) http.Handler {
	origin := c.Origin
	if origin == "" {
		origin = "*"
	}
	methods := c.Methods
	if len(methods) == 0 {
		methods = defaultCORSMethods
	}
	allowHeaders := c.AllowHeaders
	if len(allowHeaders) == 0 {
		allowHeaders = defaultCORSHeaders
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Methods", strings.Join(methods, ","))
			h.Set("Access-Control-Allow-Headers", strings.Join(allowHeaders, ","))
			if len(c.ExposeHeaders) > 0 {
				h.Set("Access-Control-Expose-Headers", strings.Join(c.ExposeHeaders, ","))
			}
			if c.Credentials {
				h.Set("Access-Control-Allow-Credentials", "true")
			}
			if c.MaxAge > 0 {
				h.Set("Access-Control-Max-Age", strconv.Itoa(c.MaxAge))
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
