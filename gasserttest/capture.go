// Package gasserttest contains helpers for testing code that uses gassert.
package gasserttest

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/gordian-engine/gassert"
)

// LogCapture collects assertion failures routed to the gassert logger.
type LogCapture struct {
	mu      sync.Mutex
	records []slog.Record
	buf     bytes.Buffer
}

// CaptureLogs installs a capturing logger as the gassert logger
// and restores the previous logger when t finishes.
//
// Because the gassert logger is process-wide,
// tests calling CaptureLogs must not run in parallel with each other.
func CaptureLogs(t testing.TB) *LogCapture {
	t.Helper()

	prev := gassert.Logger()
	t.Cleanup(func() {
		gassert.SetLogger(prev)
	})

	c := new(LogCapture)
	gassert.SetLogger(slog.New(&captureHandler{
		c:    c,
		text: slog.NewTextHandler(&c.buf, &slog.HandlerOptions{Level: slog.LevelDebug}),
	}))
	return c
}

// Len reports the number of captured log records.
func (c *LogCapture) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// Records returns a copy of the captured log records.
func (c *LogCapture) Records() []slog.Record {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]slog.Record, len(c.records))
	for i, r := range c.records {
		out[i] = r.Clone()
	}
	return out
}

// String returns the captured records rendered by a text handler.
func (c *LogCapture) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

// Reset discards every captured record.
func (c *LogCapture) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = nil
	c.buf.Reset()
}

type captureHandler struct {
	c    *LogCapture
	text slog.Handler
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

func (h *captureHandler) Handle(ctx context.Context, r slog.Record) error {
	h.c.mu.Lock()
	defer h.c.mu.Unlock()

	h.c.records = append(h.c.records, r.Clone())
	return h.text.Handle(ctx, r)
}

func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &captureHandler{c: h.c, text: h.text.WithAttrs(attrs)}
}

func (h *captureHandler) WithGroup(name string) slog.Handler {
	return &captureHandler{c: h.c, text: h.text.WithGroup(name)}
}
