package middleware

import "net/http"

// BodyLimit rejects request bodies above maxBytes. Sketch and
// image-to-image uploads arrive base64-encoded in JSON, so the limit
// is generous by default (60mb) but still bounded.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
