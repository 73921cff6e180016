package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists, lowercased, the request headers whose values never
// reach the logs. The HTTP access log and the redactor both read it.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"x-api-key":     true,
}

// sensitiveFields are attribute names whose values are always masked.
var sensitiveFields = []string{
	"password",
	"secret",
	"token",
	"access_token",
	"bearer",
	"database_url",
	"dsn",
}

// Values matching these are masked whatever the attribute is called.
var (
	bearerValue   = regexp.MustCompile(`(?i)bearer\s+[a-z0-9\-._~+/]+=*`)
	jwtValue      = regexp.MustCompile(`[A-Za-z0-9\-_]{10,}\.[A-Za-z0-9\-_]{10,}\.[A-Za-z0-9\-_]{10,}`)
	postgresCreds = regexp.MustCompile(`(?i)postgres(ql)?://[^\s/@]+@`)
	inlineAPIKey  = regexp.MustCompile(`(?i)api[_\-]?key\s*[:=]\s*\S+`)
)

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
		masq.WithRegex(postgresCreds),
		masq.WithRegex(inlineAPIKey),
	)
	return masq.New(opts...)
}
