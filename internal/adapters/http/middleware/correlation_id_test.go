package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/go-book-catalog/internal/adapters/http/middleware"
)

// serveCorrelation runs RequestID then CorrelationID and returns the ID the
// handler saw along with the recorder.
func serveCorrelation(t *testing.T, header string) (string, *httptest.ResponseRecorder) {
	t.Helper()

	var got string
	handler := middleware.Chain(middleware.RequestID(), middleware.CorrelationID())(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			got = middleware.CorrelationIDFromContext(r.Context())
		}))

	req := httptest.NewRequest(http.MethodGet, "/books", http.NoBody)
	if header != "" {
		req.Header.Set("X-Correlation-ID", header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return got, rec
}

func TestCorrelationID_ReusesCallerHeader(t *testing.T) {
	t.Parallel()

	got, rec := serveCorrelation(t, "checkout-7781")

	assert.Equal(t, "checkout-7781", got)
	assert.Equal(t, "checkout-7781", rec.Header().Get("X-Correlation-ID"))
	assert.NotEqual(t, got, rec.Header().Get("X-Request-ID"))
}

func TestCorrelationID_TrimsWhitespace(t *testing.T) {
	t.Parallel()

	got, _ := serveCorrelation(t, "  batch-12  ")

	assert.Equal(t, "batch-12", got)
}

func TestCorrelationID_FallsBackToRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing", header: ""},
		{name: "too long", header: strings.Repeat("c", 129)},
		{name: "control character", header: "abc\x01def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, rec := serveCorrelation(t, tt.header)

			reqID := rec.Header().Get("X-Request-ID")
			assert.NotEmpty(t, reqID)
			assert.Equal(t, reqID, got)
			assert.Equal(t, reqID, rec.Header().Get("X-Correlation-ID"))
		})
	}
}

func TestCorrelationID_WithoutRequestIDGeneratesUUID(t *testing.T) {
	t.Parallel()

	var got string
	handler := middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = middleware.CorrelationIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books", http.NoBody))

	assert.Regexp(t, uuidPattern, got)
	assert.Equal(t, got, rec.Header().Get("X-Correlation-ID"))
}

func TestCorrelationIDFromContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, middleware.CorrelationIDFromContext(context.Background()))

	ctx := middleware.WithCorrelationID(context.Background(), "import-3")
	assert.Equal(t, "import-3", middleware.CorrelationIDFromContext(ctx))
}
