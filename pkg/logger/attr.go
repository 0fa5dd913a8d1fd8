package logger

import (
	"log/slog"
	"time"
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

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Target records the validated input name under the key "target".
func Target(name string) slog.Attr {
	return slog.String("target", name)
}

// ValidatorType records the validator kind (sync/async) under the key "validator_type".
func ValidatorType(kind string) slog.Attr {
	return slog.String("validator_type", kind)
}

// Precedence records a validator precedence under the key "precedence".
func Precedence(p int) slog.Attr {
	return slog.Int("precedence", p)
}

// Result records a validation result kind under the key "result".
func Result(kind string) slog.Attr {
	return slog.String("result", kind)
}

// CallID records the validation call identifier under the key "call_id".
// If id is nil, it returns an empty Attr.
func CallID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("call_id", id)
}

// Records records the number of produced validation records under the key "records".
func Records(n int) slog.Attr {
	return slog.Int("records", n)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
