package logger

import (
	"log/slog"
	"strings"
)

// Key fragments whose values are never written to a log.
var sensitiveKeyPatterns = []string{
	"password",
	"secret",
	"token",
	"credential",
	"auth",
	"bearer",
}

const redactedValue = "***REDACTED***"

// redactSensitive replaces non-empty string values under sensitive keys.
func redactSensitive(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindString {
		if a.Value.String() != "" && IsSensitiveKey(a.Key) {
			return slog.String(a.Key, redactedValue)
		}
		return a
	}

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}

	return a
}

// Mask hides all but the first and last two characters of value.
// Short values are hidden entirely.
func Mask(value string) string {
	if value == "" {
		return ""
	}
	if len(value) <= 6 {
		return "***"
	}
	return value[:2] + "***" + value[len(value)-2:]
}

// IsSensitiveKey checks if a key name suggests sensitive content.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}
