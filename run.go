package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/afero"
	slogctx "github.com/veqryn/slog-context"
	"gitlab.com/tozd/go/errors"
)

type options struct {
	configPath string
	config     config
	check      bool
	verbose    bool
	noColor    bool
}

type cliApp struct {
	stdout io.Writer
	stderr io.Writer
	fs     afero.Fs
	opts   options
}

// plugin is a documentable top-level declaration and the key its output is
// stored under.
type plugin struct {
	decl *DeclarationNode
	key  string
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout, os.Stderr, afero.NewOsFs())
	cmd.SetArgs(argv)
	return cmd.Execute()
}

// resolveConfig layers the config file under the flags that were set on the
// command line.
func (app *cliApp) resolveConfig(changed func(string) bool) (config, error) {
	path := app.opts.configPath
	explicit := changed("config")
	if path == "" {
		path = defaultConfigPath
	}
	cfg, err := loadConfig(app.fs, path, explicit)
	if err != nil {
		return cfg, err
	}
	flags := app.opts.config
	if changed("input") {
		cfg.Input = flags.Input
	}
	if changed("out") {
		cfg.Out = flags.Out
	}
	if changed("suffix") {
		cfg.Suffix = flags.Suffix
	}
	if changed("file-name") {
		cfg.FileName = flags.FileName
	}
	return cfg, cfg.validate()
}

func (app *cliApp) execute(ctx context.Context, cfg config) error {
	root, err := loadTree(app.fs, cfg.Input)
	if err != nil {
		return err
	}
	index := NewTypeIndex(root.Children)
	plugins := selectPlugins(root, cfg.Suffix)
	slogctx.Debug(ctx, "loaded declaration tree", "input", cfg.Input, "declarations", index.Len(), "plugins", len(plugins))
	if len(plugins) == 0 {
		slogctx.Warn(ctx, "no documentable declarations found", "suffix", cfg.Suffix)
		return nil
	}
	if app.opts.check {
		return checkPlugins(ctx, app.fs, app.stdout, cfg, plugins, index)
	}
	return writePlugins(ctx, app.fs, cfg, plugins, index)
}

// selectPlugins returns the module children whose name ends with suffix, in
// tree order.
func selectPlugins(root *DeclarationNode, suffix string) []plugin {
	var plugins []plugin
	for _, child := range root.Children {
		if child == nil || !strings.HasSuffix(child.Name, suffix) {
			continue
		}
		plugins = append(plugins, plugin{decl: child, key: outputKey(child.Name)})
	}
	return plugins
}

// outputKey derives the output directory name of a declaration:
// "LocalNotificationsPlugin" becomes "local-notifications". The last word is
// assumed to be the shared suffix and dropped.
func outputKey(name string) string {
	words := splitWords(name)
	if len(words) == 0 {
		return ""
	}
	words = words[:len(words)-1]
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "-")
}

// splitWords splits before every upper-case letter. Runs of capitals become
// one word per letter.
func splitWords(name string) []string {
	var words []string
	start := 0
	for i, r := range name {
		if i > start && unicode.IsUpper(r) {
			words = append(words, name[start:i])
			start = i
		}
	}
	if start < len(name) {
		words = append(words, name[start:])
	}
	return words
}

func outputPath(cfg config, key string) string {
	return filepath.Join(cfg.Out, key, cfg.FileName)
}

// writePlugins renders and writes every plugin. A failed write is logged and
// the remaining plugins are still processed.
func writePlugins(ctx context.Context, fs afero.Fs, cfg config, plugins []plugin, index TypeIndex) error {
	var failed []string
	for _, p := range plugins {
		content := renderDeclaration(p.decl, index)
		path := outputPath(cfg, p.key)
		if err := writeArtifact(fs, path, content); err != nil {
			slogctx.Error(ctx, "failed to write plugin docs", "key", p.key, "path", path, "error", err)
			failed = append(failed, p.key)
			continue
		}
		slogctx.Info(ctx, "wrote plugin docs", "key", p.key, "path", path)
	}
	if len(failed) > 0 {
		return errors.Errorf("failed to write %d of %d plugin docs: %s", len(failed), len(plugins), strings.Join(failed, ", "))
	}
	return nil
}

func writeArtifact(fs afero.Fs, path string, data []byte) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Errorf("create output directory: %w", err)
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return errors.Errorf("write %s: %w", path, err)
	}
	return nil
}

func listPlugins(w io.Writer, plugins []plugin) {
	for _, p := range plugins {
		methods := 0
		for _, c := range p.decl.Children {
			if c != nil && len(c.Signatures) > 0 {
				methods++
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%d\n", displayKey(p.key), p.decl.Name, methods)
	}
}

func displayKey(key string) string {
	if key == "" {
		return "."
	}
	return key
}
