package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

// Log writes one entry per request. Request bodies are never logged since
// they carry card numbers.
func Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		statusCode := ww.Status()
		if statusCode == 0 {
			statusCode = http.StatusOK
		}

		entry := log.WithFields(log.Fields{
			"statusCode": statusCode,
			"latency":    time.Since(start).Microseconds(),
			"clientIp":   r.RemoteAddr,
			"method":     r.Method,
			"path":       r.URL.Path,
			"dataLength": ww.BytesWritten(),
			"userAgent":  r.UserAgent(),
		})

		switch {
		case statusCode > 499:
			entry.Error("request failed")
		case statusCode > 399:
			entry.Warn("request rejected")
		default:
			entry.Info("request served")
		}
	})
}
