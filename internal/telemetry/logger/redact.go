package logger

import (
	"log/slog"
	"strings"
)

// Key fragments that mark a configuration value as secret.
var sensitiveKeyPatterns = []string{
	"password",
	"passwd",
	"secret",
	"token",
	"apikey",
	"api_key",
	"credential",
	"privatekey",
	"private_key",
	"auth",
	"bearer",
}

// Redacted is the placeholder written instead of a sensitive value.
const Redacted = "***REDACTED***"

// redactSensitive replaces non-empty string attributes whose key looks
// sensitive. Groups are walked recursively.
func redactSensitive(a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindString:
		if a.Value.String() != "" && IsSensitiveKey(a.Key) {
			return slog.String(a.Key, Redacted)
		}
	case slog.KindGroup:
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}
	return a
}

// IsSensitiveKey checks if a key name suggests sensitive content.
// Matching ignores case, so "dbPassword" and "DB_PASSWORD" both match.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}

// MaskValue partially masks a secret, keeping the first and last three
// characters of long values as a hint.
func MaskValue(value string) string {
	if len(value) <= 8 {
		return Redacted
	}
	return value[:3] + "..." + value[len(value)-3:]
}
