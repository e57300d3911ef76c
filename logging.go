package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	slogctx "github.com/veqryn/slog-context"
	"golang.org/x/term"
)

// setupLogging installs a tint handler writing to w and returns a context
// carrying the logger.
func setupLogging(ctx context.Context, w io.Writer, verbose, noColor bool) context.Context {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    noColor || !isTerminal(w),
	})
	logger := slog.New(slogctx.NewHandler(handler, nil))
	return slogctx.NewCtx(ctx, logger)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
