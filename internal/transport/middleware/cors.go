package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/riseflow-agreements/internal/config"
)

// exposedHeaders are response headers browser clients need to read: the
// request ID for support tickets, the download name of an assignment export
// and the back-off hint on rate-limited signing.
const exposedHeaders = "X-Request-Id, Content-Disposition, Retry-After"

// CORS returns middleware that answers preflight requests and sets the
// allow headers for configured origins. Origins are parsed once.
func CORS(cfg config.CORSConfig) Middleware {
	var (
		origins  = make(map[string]struct{})
		anyOrigin bool
	)
	for _, o := range strings.Split(cfg.AllowedOrigins, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			anyOrigin = true
		default:
			origins[o] = struct{}{}
		}
	}
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			allowed := false
			if origin != "" {
				_, listed := origins[origin]
				allowed = anyOrigin || listed
			}
			if allowed {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Expose-Headers", exposedHeaders)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if allowed {
					h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
					h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
					h.Set("Access-Control-Max-Age", maxAge)
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
