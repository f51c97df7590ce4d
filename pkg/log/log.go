// Package log wraps log/slog with the small amount of plumbing the CLI needs:
// handler construction from a config struct, a nop logger, context carriage,
// and a capturing handler for tests.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
)

// Config selects the handler flavor and destination.
type Config struct {
	// Out defaults to stderr so digests on stdout stay machine-readable.
	Out   io.Writer
	Level slog.Level
	JSON  bool
}

// New builds a configured *slog.Logger.
func New(cfg Config) *slog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	return slog.New(handler)
}

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger { return slog.New(nopHandler{}) }

type ctxKey struct{}

// WithContext stores lg on ctx.
func WithContext(ctx context.Context, lg *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, lg)
}

// FromContext returns the logger carried by ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if lg, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && lg != nil {
			return lg
		}
	}
	return slog.Default()
}

// Entry is one captured log record.
type Entry struct {
	Level slog.Level
	Msg   string
	Attrs map[string]any
}

// TestHandler records structured entries for assertions.
type TestHandler struct {
	mu      sync.Mutex
	entries []Entry
}

func (h *TestHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *TestHandler) Handle(_ context.Context, r slog.Record) error {
	e := Entry{Level: r.Level, Msg: r.Message, Attrs: map[string]any{}}
	r.Attrs(func(a slog.Attr) bool {
		e.Attrs[a.Key] = a.Value.Any()
		return true
	})
	h.mu.Lock()
	h.entries = append(h.entries, e)
	h.mu.Unlock()
	return nil
}

func (h *TestHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *TestHandler) WithGroup(string) slog.Handler      { return h }

// Entries returns a copy of everything captured so far.
func (h *TestHandler) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Entry(nil), h.entries...)
}

// NewTest returns a logger backed by a capturing handler.
func NewTest() (*slog.Logger, *TestHandler) {
	th := &TestHandler{}
	return slog.New(th), th
}

var (
	_ slog.Handler = nopHandler{}
	_ slog.Handler = (*TestHandler)(nil)
)
