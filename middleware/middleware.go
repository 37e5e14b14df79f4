package middleware

import (
	"net/http"
	"time"

	"github.com/andrewpaige1/studysync-api/logger"
	"github.com/andrewpaige1/studysync-api/utils"
)

// Readiness is satisfied by the study store.
type Readiness interface {
	Loaded() bool
}

// RequireLoaded answers 503 until the initial load of the study data has
// completed, so no request observes or mutates the empty default tree.
func RequireLoaded(ready Readiness) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !ready.Loaded() {
				w.Header().Set("Retry-After", "1")
				utils.WriteError(w, http.StatusServiceUnavailable, "Study data is still loading")
				return
			}
			next(w, r)
		}
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// Logging logs one line per request with its status and duration.
func Logging(log *logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}
		kv := []interface{}{
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", rec.bytes,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if status >= http.StatusInternalServerError {
			log.Warn("request", kv...)
			return
		}
		log.Info("request", kv...)
	})
}
