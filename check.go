package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/afero"
	slogctx "github.com/veqryn/slog-context"
	"gitlab.com/tozd/go/errors"
)

// checkPlugins renders every plugin and compares it with the artifact on
// disk, printing a unified diff for each one that drifted.
func checkPlugins(ctx context.Context, fs afero.Fs, w io.Writer, cfg config, plugins []plugin, index TypeIndex) error {
	var stale int
	for _, p := range plugins {
		path := outputPath(cfg, p.key)
		diff, err := artifactDiff(fs, path, renderDeclaration(p.decl, index))
		if err != nil {
			return err
		}
		if diff == "" {
			slogctx.Debug(ctx, "plugin docs up to date", "key", p.key, "path", path)
			continue
		}
		stale++
		slogctx.Warn(ctx, "plugin docs out of date", "key", p.key, "path", path)
		fmt.Fprint(w, diff)
	}
	if stale > 0 {
		return errors.Errorf("%d of %d plugin docs are out of date", stale, len(plugins))
	}
	return nil
}

// artifactDiff returns an empty string when the file at path holds exactly
// want. A missing file diffs against empty content.
func artifactDiff(fs afero.Fs, path string, want []byte) (string, error) {
	have, err := afero.ReadFile(fs, path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", errors.Errorf("read %s: %w", path, err)
	}
	if err == nil && bytes.Equal(have, want) {
		return "", nil
	}
	from := path
	if err != nil {
		from = "/dev/null"
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(have)),
		B:        difflib.SplitLines(string(want)),
		FromFile: from,
		ToFile:   path + " (rendered)",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", errors.Errorf("diff %s: %w", path, err)
	}
	return text, nil
}
