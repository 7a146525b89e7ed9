// Package middleware holds the inbound HTTP pipeline of the book catalog.
//
// Production wires the middleware in this order, outermost first:
//
//	Recovery → RequestID → CorrelationID → CORS → OpenTelemetry → Logging →
//	RateLimit → Auth → Timeout → handler
//
// Every middleware has the shape func(http.Handler) http.Handler and is
// composed with Chain.
package middleware

import "net/http"

// statusRecorder remembers the status and body size a handler produced so
// that recovery, tracing and access logging can report them afterwards.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	started bool
	bytes   int64
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader records code and forwards it. Repeated calls are dropped, as
// net/http would only warn about them.
func (sr *statusRecorder) WriteHeader(code int) {
	if sr.started {
		return
	}
	sr.status = code
	sr.started = true
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	sr.started = true
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += int64(n)
	return n, err
}

// Flush lets streaming handlers push partial responses through the wrapper.
func (sr *statusRecorder) Flush() {
	sr.started = true
	if f, ok := sr.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap exposes the wrapped writer to http.ResponseController.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}
