package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tair/starwars-api/pkg/logger"
)

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}

// RequestLogging logs every request with a request id, taking the id from
// the X-Request-Id header when the caller provides one
func RequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestID)

		rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r)

		duration := time.Since(start)

		logEvent := logger.Info(r.Context())
		if rec.statusCode >= 500 {
			logEvent = logger.Error(r.Context())
		} else if rec.statusCode >= 400 {
			logEvent = logger.Warn(r.Context())
		}

		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_addr", r.RemoteAddr).
			Int("status", rec.statusCode).
			Dur("duration", duration).
			Str("request_id", requestID).
			Msg("Request completed")
	})
}
