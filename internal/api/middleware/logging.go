package middleware

import (
	"net/http"
	"time"
)

// Logging пишет строку журнала доступа на каждый запрос
func Logging(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			requestID, _ := GetRequestID(r.Context())
			duration := time.Since(start)

			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error("%s %s - %d (%d bytes) in %s, request_id=%s",
					r.Method, r.URL.RequestURI(), rec.status, rec.bytes, duration, requestID)
			case rec.status >= http.StatusBadRequest:
				logger.Warn("%s %s - %d (%d bytes) in %s, request_id=%s",
					r.Method, r.URL.RequestURI(), rec.status, rec.bytes, duration, requestID)
			default:
				logger.Info("%s %s - %d (%d bytes) in %s, request_id=%s",
					r.Method, r.URL.RequestURI(), rec.status, rec.bytes, duration, requestID)
			}
		})
	}
}
