package logger

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/acmeconsole/pkg/sanitizer"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Subject records a short SHA-256 fingerprint of a user or session identifier
// under the key "subject". Records stay correlatable without exposing the id.
// A nil id returns an empty Attr.
func Subject(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	sum := sha256.Sum256(fmt.Append(nil, id))
	return slog.String("subject", hex.EncodeToString(sum[:6]))
}

// Email records a masked email address under the key "email".
func Email(addr string) slog.Attr {
	return slog.String("email", sanitizer.MaskEmail(addr))
}

// RequestID records the request identifier under the key "request_id".
// An empty id returns an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}
