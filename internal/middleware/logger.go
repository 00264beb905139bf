package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// logLineBudget caps the length of a request log line, response body
// included.
const logLineBudget = 80

// responseRecorder captures the status code and a copy of the body so
// the logger can include the JSON response in its line.
type responseRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// Logger logs one line per /api request: method, path, status,
// duration and the JSON body, truncated to a fixed character budget so
// data-URL payloads never flood the log.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api") {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		line := fmt.Sprintf("%s %s %d in %dms", r.Method, r.URL.Path, rec.status, time.Since(start).Milliseconds())
		if rec.body.Len() > 0 {
			line += " :: " + rec.body.String()
		}
		if len(line) > logLineBudget {
			line = line[:logLineBudget-1] + "…"
		}

		log.Info().Str("requestId", GetRequestID(r.Context())).Msg(line)
	})
}
