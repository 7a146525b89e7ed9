package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"

	"github.com/jsamuelsen11/go-book-catalog/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-book-catalog/internal/domain"
	"github.com/jsamuelsen11/go-book-catalog/internal/platform/config"
	"github.com/jsamuelsen11/go-book-catalog/internal/platform/logging"
)

const bearerPrefix = "bearer "

var (
	errMissingToken = errors.New("missing bearer token")
	errInvalidToken = errors.New("invalid bearer token")
)

// subjectKey is the context key for the authenticated subject.
type subjectKey struct{}

// SubjectFromContext returns the "sub" claim of the request's token, or ""
// when the request was not authenticated.
func SubjectFromContext(ctx context.Context) string {
	if sub, ok := ctx.Value(subjectKey{}).(string); ok {
		return sub
	}
	return ""
}

// Auth returns middleware that requires an HS256-signed bearer token on every
// route except the health endpoints. Tokens must be unexpired and, when an
// issuer is configured, carry that issuer. Failures produce a 401 problem
// response with a WWW-Authenticate challenge. A disabled config passes every
// request through.
func Auth(cfg config.AuthConfig) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler { return next }
	}

	secret := []byte(cfg.JWTSecret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	keyFunc := func(*jwt.Token) (any, error) {
		return secret, nil
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := authenticate(r, parser, keyFunc, cfg.Issuer)
			if err != nil {
				logging.FromContext(r.Context()).DebugContext(r.Context(), "request rejected",
					"reason", err.Error(),
				)
				w.Header().Set("WWW-Authenticate", `Bearer realm="bookcatalog"`)
				dto.WriteErrorResponse(w, r, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err))
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey{}, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func authenticate(r *http.Request, parser *jwt.Parser, keyFunc jwt.Keyfunc, issuer string) (*jwt.RegisteredClaims, error) {
	header := r.Header.Get("Authorization")
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return nil, errMissingToken
	}
	raw := strings.TrimSpace(header[len(bearerPrefix):])

	claims := &jwt.RegisteredClaims{}
	token, err := parser.ParseWithClaims(raw, claims, keyFunc)
	if err != nil || !token.Valid {
		return nil, errInvalidToken
	}
	if issuer != "" && !claims.VerifyIssuer(issuer, true) {
		return nil, errInvalidToken
	}
	return claims, nil
}

// isPublicPath reports whether path is served without authentication.
func isPublicPath(path string) bool {
	return path == "/health" || strings.HasPrefix(path, "/health/")
}
