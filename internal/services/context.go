package services

import "context"

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	sectionKey   contextKey = "section"
)

// WithRequestID annotates context with a correlation identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the correlation identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithSection annotates context with the report section being assembled
// (scheduled or library).
func WithSection(ctx context.Context, section string) context.Context {
	if section == "" {
		return ctx
	}
	return context.WithValue(ctx, sectionKey, section)
}

// SectionFromContext returns the report section if present.
func SectionFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(sectionKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
