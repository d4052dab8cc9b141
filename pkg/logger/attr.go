package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// A nil error yields an empty Attr, which slog skips.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component tags records with the emitting package.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Key records a durable-storage key.
func Key(key string) slog.Attr {
	return slog.String("key", key)
}

// HTTPRequest groups method and path of an outgoing request.
func HTTPRequest(method, path string) slog.Attr {
	return Group("http", slog.String("method", method), slog.String("path", path))
}

// StatusCode records a transport or application status code.
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}
