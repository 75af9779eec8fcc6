package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/jarpath/internal/ui/output"
	"go.trai.ch/jarpath/internal/ui/style"
)

// CoordinateKey is the attribute rendered as a bracketed prefix instead of key=value.
const CoordinateKey = "coordinate"

// levelStyle is the icon and color of one severity band.
type levelStyle struct {
	min   slog.Level
	icon  string
	color lipgloss.Color
}

// levelStyles is ordered from most to least severe; the first band a record reaches wins.
var levelStyles = []levelStyle{
	{min: slog.LevelError, icon: style.Cross, color: style.Red},
	{min: slog.LevelWarn, icon: style.Warning, color: style.Yellow},
	{min: slog.LevelInfo, color: style.Slate},
	{min: slog.LevelDebug, icon: style.Dot, color: style.Gray},
}

func styleFor(level slog.Level) levelStyle {
	for _, s := range levelStyles {
		if level >= s.min {
			return s
		}
	}
	return levelStyles[len(levelStyles)-1]
}

// PrettyHandler is a slog.Handler writing one colored line per record:
// "<icon> [<coordinate>] <message> key=value...".
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	prefix string // group path ending in "." or empty
	bound  []string
	coord  string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	h := &PrettyHandler{out: output.New(w), level: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	coord := h.coord
	fields := append([]string(nil), h.bound...)
	r.Attrs(func(attr slog.Attr) bool {
		if c, ok := h.coordinate(attr); ok {
			coord = c
			return true
		}
		fields = append(fields, h.field(attr))
		return true
	})

	s := styleFor(r.Level)
	var b strings.Builder
	if s.icon != "" {
		b.WriteString(s.icon + " ")
	}
	if coord != "" {
		b.WriteString("[" + coord + "] ")
	}
	b.WriteString(r.Message)
	for _, f := range fields {
		b.WriteString(" " + f)
	}

	line := h.out.String(b.String()).Foreground(termenv.RGBColor(string(s.color)))
	_, err := h.out.WriteString(line.String() + "\n")
	return err
}

// WithAttrs returns a new Handler with the attributes rendered once up front.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.bound = append([]string(nil), h.bound...)
	for _, attr := range attrs {
		if c, ok := h.coordinate(attr); ok {
			next.coord = c
			continue
		}
		next.bound = append(next.bound, h.field(attr))
	}
	return &next
}

// WithGroup returns a new Handler qualifying later keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

// coordinate reports whether attr is the ungrouped coordinate attribute.
func (h *PrettyHandler) coordinate(attr slog.Attr) (string, bool) {
	if h.prefix != "" || attr.Key != CoordinateKey {
		return "", false
	}
	return attr.Value.String(), true
}

// field renders key=value, quoting values that contain spaces or are empty.
func (h *PrettyHandler) field(attr slog.Attr) string {
	value := attr.Value.Resolve().String()
	if value == "" || strings.ContainsAny(value, " \t\n\"=") {
		value = strconv.Quote(value)
	}
	return h.prefix + attr.Key + "=" + value
}
