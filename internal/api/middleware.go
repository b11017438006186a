// SPDX-License-Identifier: MIT

package api

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/google/uuid"

	"github.com/AhmedFarag1/go-clean-code/internal/log"
	"github.com/AhmedFarag1/go-clean-code/internal/metrics"
)

const requestIDHeader = "X-Request-ID"

// RequestID assigns each request a UUID (or adopts the client-provided one),
// stores it in the context and echoes it in the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		ctx := log.ContextWithRequestID(r.Context(), id)
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Recoverer converts handler panics into opaque 500 responses.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger := log.WithComponentFromContext(r.Context(), "api")
				logger.Error().
					Str(log.FieldEvent, "http.panic").
					Str("panic", fmt.Sprint(rec)).
					Bytes("stack", debug.Stack()).
					Msg("handler panicked")
				writeInternal(w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// SecurityHeaders adds the baseline security headers to every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

// statusWriter captures the response status code for logging and metrics.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Logging emits one structured log line per request with latency and status.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		logger := log.WithComponentFromContext(r.Context(), "api")
		logger.Info().
			Str(log.FieldEvent, "http.request").
			Str("method", r.Method).
			Str(log.FieldPath, r.URL.Path).
			Int("status", sw.status).
			Dur("duration", time.Since(start)).
			Msg("request served")
	})
}

// Metrics records Prometheus observations per request, labelled by the chi
// route pattern to keep cardinality bounded.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(r.Method, path, strconv.Itoa(sw.status)).
			Observe(time.Since(start).Seconds())
	})
}

// RateLimit returns a per-IP sliding-window limiter for the API routes.
func RateLimit(requestsPerMinute int) func(http.Handler) http.Handler {
	return httprate.Limit(
		requestsPerMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", "60")
			writeJSON(w, http.StatusTooManyRequests, map[string]string{
				"error": "rate limit exceeded",
			})
		}),
	)
}
