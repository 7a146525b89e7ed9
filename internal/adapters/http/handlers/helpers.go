package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-book-catalog/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-book-catalog/internal/domain"
	"github.com/jsamuelsen11/go-book-catalog/internal/domain/page"
	"github.com/jsamuelsen11/go-book-catalog/internal/platform/config"
	"github.com/jsamuelsen11/go-book-catalog/internal/platform/logging"
)

// Pagination response headers.
const (
	headerTotalCount = "X-Total-Count"
	headerPage       = "X-Page"
	headerPageSize   = "X-Page-Size"
)

// defaultMaxBodyBytes is the request body cap when none is configured (1 MiB).
const defaultMaxBodyBytes = 1 << 20

// parseID extracts a positive int64 path parameter from the chi URL params.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("path."+param, "must be a positive integer")
	}
	return id, nil
}

// parsePageRequest reads the page and size query parameters. Missing values
// take the configured defaults, size is capped at the configured maximum, and
// a negative page or non-positive size is rejected.
func parsePageRequest(r *http.Request, cfg config.PaginationConfig) (page.Request, error) {
	req := page.Request{Number: 0, Size: cfg.DefaultSize}
	fields := make(map[string]string)
	q := r.URL.Query()

	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			fields["query.page"] = "must be an integer"
		case n < 0:
			fields["query.page"] = "must not be negative"
		default:
			req.Number = n
		}
	}

	if raw := q.Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			fields["query.size"] = "must be an integer"
		case n <= 0:
			fields["query.size"] = "must be positive"
		default:
			req.Size = min(n, cfg.MaxSize)
		}
	}

	if len(fields) > 0 {
		return page.Request{}, &domain.ValidationError{Fields: fields}
	}
	return req, nil
}

// writePageHeaders sets the pagination headers of a list response.
func writePageHeaders(w http.ResponseWriter, total int64, req page.Request) {
	h := w.Header()
	h.Set(headerTotalCount, strconv.FormatInt(total, 10))
	h.Set(headerPage, strconv.Itoa(req.Number))
	h.Set(headerPageSize, strconv.Itoa(req.Size))
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := dto.JSON.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxBytes to prevent resource exhaustion. On failure, it writes
// a 400 error response (413 for an oversized body) and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, maxBytes int64, dst any) bool {
	if maxBytes <= 0 {
		maxBytes = defaultMaxBodyBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := dto.JSON.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			dto.WriteProblem(w, r, http.StatusRequestEntityTooLarge,
				"request body exceeds "+strconv.FormatInt(maxBytes, 10)+" bytes")
			return false
		}
		dto.WriteErrorResponse(w, r, domain.NewValidationError("body", "invalid JSON"))
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, maxBytes int64, dst T) bool {
	if !decodeJSONBody(w, r, maxBytes, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
