package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists, lowercased, the HTTP headers that carry
// credentials. The request logging middleware and the masq redactor both read
// it.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"cookie":              true,
	"set-cookie":          true,
	"x-api-key":           true,
	"x-csrf-token":        true,
}

// Attribute names whose values are always hidden.
var sensitiveFields = []string{"password", "secret", "token", "jwt_secret", "dsn"}

var (
	bearerValue = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// Three base64url segments of ten or more characters; shorter dotted
	// strings such as versions are left alone.
	jwtValue    = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	apiKeyValue = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
	// scheme://user:password@ in connection strings and URLs.
	urlPassword = regexp.MustCompile(`(?i)[a-z][a-z0-9+\-.]*://[^:/@\s]+:[^@\s]+@`)
)

// redactor builds the masq ReplaceAttr hook used by every handler from New.
func redactor() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+6)
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerValue),
		masq.WithRegex(jwtValue),
		masq.WithRegex(apiKeyValue),
		masq.WithRegex(urlPassword),
	)
	return masq.New(opts...)
}
