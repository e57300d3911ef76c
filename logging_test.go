package main

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	slogctx "github.com/veqryn/slog-context"
)

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "log")
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	assert.False(t, isTerminal(f))
}

func TestSetupLoggingWritesPlainTextOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	ctx := setupLogging(context.Background(), &buf, true, false)
	slogctx.Debug(ctx, "rendered", "key", "echo")
	out := buf.String()
	assert.Contains(t, out, "rendered")
	assert.Contains(t, out, "key=echo")
	assert.NotContains(t, out, "\x1b[")
}
