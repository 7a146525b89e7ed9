package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-book-catalog/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders returns one slog.Attr per header, sorted by name, with the
// values of logging.SensitiveHeaders replaced by "[REDACTED]". Multi-value
// headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	slices.Sort(names)

	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		if logging.SensitiveHeaders[strings.ToLower(name)] {
			attrs = append(attrs, slog.String(name, redacted))
			continue
		}
		attrs = append(attrs, slog.String(name, strings.Join(headers[name], ",")))
	}
	return attrs
}
