// Package testutil provides shared fixtures and helpers for the test suites.
package testutil

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/loomgo/internal/catalogue"
	"github.com/vk/loomgo/internal/config"
	"github.com/vk/loomgo/internal/ctxlog"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Context returns a context carrying a debug-level logger that discards its
// output.
func Context(t *testing.T) context.Context {
	t.Helper()
	ctx, _ := ContextWithLogs(t)
	return ctx
}

// ContextWithLogs returns a context carrying a debug-level logger writing to
// the returned buffer, for tests that assert on log output.
func ContextWithLogs(t *testing.T) (context.Context, *SafeBuffer) {
	t.Helper()
	buf := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger), buf
}

// QuietContext returns a context whose logger drops everything, for
// benchmarks and noisy loops.
func QuietContext(t *testing.T) context.Context {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctxlog.WithLogger(context.Background(), logger)
}

// WorkerDef builds a worker definition from step name/technique pairs.
func WorkerDef(name, designName string, steps ...*config.Step) *config.Worker {
	return &config.Worker{Name: name, Design: designName, Steps: steps}
}

// StepDef builds a step definition.
func StepDef(name string, techniques ...string) *config.Step {
	return &config.Step{Name: name, Techniques: techniques}
}

// Catalogue builds a catalogue for the worker, failing the test on
// configuration errors.
func Catalogue(t *testing.T, worker *config.Worker, parameters map[string]map[string]any) *catalogue.Catalogue {
	t.Helper()
	cat, err := catalogue.New(worker, parameters)
	require.NoError(t, err)
	return cat
}
