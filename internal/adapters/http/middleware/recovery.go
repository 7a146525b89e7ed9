package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/go-book-catalog/internal/adapters/http/dto"
)

// Recovery returns middleware that turns a handler panic into a 500 problem
// response. The panic value and stack are logged; the client only sees the
// generic status text. If the response has already started, only the log
// entry is emitted. http.ErrAbortHandler is re-raised so net/http can abort
// the connection silently.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newStatusRecorder(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Bool("response_started", rw.started),
				)

				if !rw.started {
					dto.WriteErrorResponse(rw, r, fmt.Errorf("panic serving %s %s: %v", r.Method, r.URL.Path, v))
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
