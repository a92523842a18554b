package chi

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

// allowedMethods are the methods accepted on cross-origin requests.
var allowedMethods = []string{
	http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
	http.MethodPatch, http.MethodDelete, http.MethodOptions,
}

// CORSOptions configures CORSMiddleware.
type CORSOptions struct {
	AllowedOrigins   []string // "*" allows any origin
	AllowCredentials bool
	MaxAgeSec        int
}

// CORSMiddleware applies the cross-origin policy with go-chi/cors.
// Any method and any header are accepted. Preflights are answered with 204
// and never reach the router; a preflight from a disallowed origin gets 403.
func CORSMiddleware(opts CORSOptions) func(http.Handler) http.Handler {
	c := cors.New(corsOptions(opts))

	return func(next http.Handler) http.Handler {
		return c.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isPreflight(r) {
				next.ServeHTTP(w, r)
				return
			}
			if w.Header().Get("Access-Control-Allow-Origin") == "" {
				writeError(w, http.StatusForbidden, ErrorCodeBadRequest, "disallowed CORS origin")
				return
			}
			w.WriteHeader(http.StatusNoContent)
		}))
	}
}

// corsOptions maps CORSOptions onto the library options. A wildcard with
// credentials is expressed as an origin func so the request origin is echoed:
// browsers reject "*" on credentialed responses.
func corsOptions(opts CORSOptions) cors.Options {
	out := cors.Options{
		AllowedMethods:     allowedMethods,
		AllowedHeaders:     []string{"*"},
		AllowCredentials:   opts.AllowCredentials,
		MaxAge:             opts.MaxAgeSec,
		OptionsPassthrough: true,
	}

	origins := make([]string, 0, len(opts.AllowedOrigins))
	for _, o := range opts.AllowedOrigins {
		if o == "*" && opts.AllowCredentials {
			out.AllowOriginFunc = func(_ *http.Request, _ string) bool { return true }
			return out
		}
		origins = append(origins, strings.TrimRight(o, "/"))
	}
	out.AllowedOrigins = origins
	return out
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions &&
		r.Header.Get("Origin") != "" &&
		r.Header.Get("Access-Control-Request-Method") != ""
}
