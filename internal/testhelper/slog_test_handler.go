package testhelper

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
)

// NewLogger returns a slog text logger that writes each record through `tb.Log`,
// so log lines stay attached to the test that produced them.
func NewLogger(tb testing.TB, opts *slog.HandlerOptions) *slog.Logger {
	tb.Helper()

	var buf bytes.Buffer

	return slog.New(&slogTestHandler{
		buf:   &buf,
		inner: slog.NewTextHandler(&buf, opts),
		mu:    &sync.Mutex{},
		tb:    tb,
	})
}

// slogTestHandler shares buf and mu with every handler derived from it
// through WithAttrs/WithGroup.
type slogTestHandler struct {
	buf   *bytes.Buffer
	inner slog.Handler
	mu    *sync.Mutex
	tb    testing.TB
}

func (h *slogTestHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *slogTestHandler) Handle(ctx context.Context, rec slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.inner.Handle(ctx, rec); err != nil {
		return err
	}

	output, err := io.ReadAll(h.buf)
	if err != nil {
		return err
	}

	// t.Log adds its own newline.
	output = bytes.TrimSuffix(output, []byte("\n"))

	h.tb.Helper()
	h.tb.Log(string(output))

	return nil
}

func (h *slogTestHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(h.inner.WithAttrs(attrs))
}

func (h *slogTestHandler) WithGroup(name string) slog.Handler {
	return h.derive(h.inner.WithGroup(name))
}

func (h *slogTestHandler) derive(inner slog.Handler) *slogTestHandler {
	return &slogTestHandler{
		buf:   h.buf,
		inner: inner,
		mu:    h.mu,
		tb:    h.tb,
	}
}
