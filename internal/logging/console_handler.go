package logging

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// lockedWriter serializes writes from every handler derived from one logger.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) write(line string) error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	_, err := io.WriteString(lw.w, line)
	return err
}

type field struct {
	key   string
	value slog.Value
}

// consoleHandler renders one header line per record followed by indented
// "key: value" lines. Debug records also carry the caller's file and line.
type consoleHandler struct {
	out    *lockedWriter
	level  slog.Leveler
	groups []string
	preset []field
}

func newConsoleHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return &consoleHandler{out: &lockedWriter{w: w}, level: level}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(ctx context.Context, record slog.Record) error {
	if !h.Enabled(ctx, record.Level) {
		return nil
	}

	fields := make([]field, 0, len(h.preset)+record.NumAttrs()+2)
	fields = append(fields, h.preset...)
	for _, attr := range ContextFields(ctx) {
		fields = appendAttr(fields, nil, attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		fields = appendAttr(fields, h.groups, attr)
		return true
	})
	component, fields := splitComponent(fields)
	fields = mergeFields(fields)

	ts := record.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	message := strings.TrimSpace(record.Message)
	if message == "" {
		message = "(no message)"
	}

	var b strings.Builder
	b.WriteString(formatTimestamp(ts))
	b.WriteString(" ")
	b.WriteString(levelLabel(record.Level))
	if component != "" {
		b.WriteString(" [" + component + "]")
	}
	b.WriteString(" – ")
	b.WriteString(message)
	if record.Level <= slog.LevelDebug {
		if src := record.Source(); src != nil && src.File != "" {
			b.WriteString(" [" + filepath.Base(src.File) + ":" + strconv.Itoa(src.Line) + "]")
		}
	}
	b.WriteString("\n")
	for _, f := range fields {
		b.WriteString("    - " + f.key + ": " + formatValue(f.value) + "\n")
	}
	return h.out.write(b.String())
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := *h
	next.preset = append([]field(nil), h.preset...)
	for _, attr := range attrs {
		next.preset = appendAttr(next.preset, h.groups, attr)
	}
	return &next
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.groups = append(append([]string(nil), h.groups...), name)
	return &next
}

// appendAttr flattens attr into dotted keys under groups.
func appendAttr(dst []field, groups []string, attr slog.Attr) []field {
	if attr.Equal(slog.Attr{}) {
		return dst
	}
	attr.Value = attr.Value.Resolve()
	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			groups = append(append([]string(nil), groups...), attr.Key)
		}
		for _, member := range attr.Value.Group() {
			dst = appendAttr(dst, groups, member)
		}
		return dst
	}
	key := attr.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	return append(dst, field{key: key, value: attr.Value})
}

// splitComponent removes the component fields and returns the first one's
// value for the header.
func splitComponent(fields []field) (string, []field) {
	var component string
	rest := fields[:0]
	for _, f := range fields {
		if f.key == FieldComponent {
			if component == "" {
				component = attrString(f.value)
			}
			continue
		}
		rest = append(rest, f)
	}
	return component, rest
}

// mergeFields drops empty keys and keeps one entry per key. The last value
// wins but the key stays where it first appeared.
func mergeFields(fields []field) []field {
	if len(fields) < 2 {
		return fields
	}
	index := make(map[string]int, len(fields))
	merged := make([]field, 0, len(fields))
	for _, f := range fields {
		if f.key == "" {
			continue
		}
		if i, ok := index[f.key]; ok {
			merged[i].value = f.value
			continue
		}
		index[f.key] = len(merged)
		merged = append(merged, f)
	}
	return merged
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
