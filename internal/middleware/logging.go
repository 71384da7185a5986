package middleware

import (
	"net/http"
	"time"

	"github.com/2beens/gymtracker/pkg"

	log "github.com/sirupsen/logrus"
)

// LogRequest logs every request once it is served, at trace level, or at
// warn level for server errors.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			begin := time.Now()
			resp := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(resp, r)

			fields := log.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   resp.statusCode,
				"duration": time.Since(begin).String(),
				"ua":       r.Header.Get("User-Agent"),
			}
			if ip, err := pkg.ReadUserIP(r); err == nil {
				fields["ip"] = ip
			}

			entry := log.WithFields(fields)
			if resp.statusCode >= http.StatusInternalServerError {
				entry.Warn(" <==== request failed")
				return
			}
			entry.Trace(" <==== request")
		})
	}
}
