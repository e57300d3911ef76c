package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
	"gitlab.com/tozd/go/errors"
)

const rootLongDesc = `
plugin-docs renders HTML API reference fragments for plugin libraries from a
TypeDoc-style JSON declaration tree.

Every top-level declaration whose name ends with the plugin suffix (Plugin by
default) is written to <out>/<key>/api.html, where the key is derived from the
declaration name: LocalNotificationsPlugin becomes local-notifications.

Each fragment lists the plugin's methods with their signatures and parameters,
followed by the interfaces those methods reference.

Settings are read from plugin-docs.yaml when present; flags override it.
`

func newRootCmd(stdout, stderr io.Writer, fs afero.Fs) *cobra.Command {
	app := &cliApp{stdout: stdout, stderr: stderr, fs: fs}
	cmd := &cobra.Command{
		Use:           "plugin-docs [flags]",
		Short:         "Render plugin API reference fragments from a declaration tree",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	defaults := defaultConfig()
	flags := cmd.PersistentFlags()
	flags.StringVar(&app.opts.configPath, "config", defaultConfigPath, "YAML config file")
	flags.StringVarP(&app.opts.config.Input, "input", "i", defaults.Input, "declaration tree JSON file")
	flags.StringVarP(&app.opts.config.Out, "out", "o", defaults.Out, "output root directory")
	flags.StringVar(&app.opts.config.Suffix, "suffix", defaults.Suffix, "name suffix marking documentable declarations")
	flags.StringVar(&app.opts.config.FileName, "file-name", defaults.FileName, "file name of each rendered fragment")
	flags.BoolVarP(&app.opts.verbose, "verbose", "v", false, "log debug output")
	flags.BoolVar(&app.opts.noColor, "no-color", false, "disable colored log output")
	cmd.Flags().BoolVar(&app.opts.check, "check", false, "report fragments that differ from the rendered output instead of writing them")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx, cfg, err := app.prepare(cmd)
		if err != nil {
			return err
		}
		return app.execute(ctx, cfg)
	}

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

// prepare sets up logging and resolves the effective configuration.
func (app *cliApp) prepare(cmd *cobra.Command) (context.Context, config, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = setupLogging(ctx, app.stderr, app.opts.verbose, app.opts.noColor)
	cfg, err := app.resolveConfig(cmd.Flags().Changed)
	return ctx, cfg, err
}

func newListCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List documentable declarations and their output keys",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		_, cfg, err := app.prepare(cmd)
		if err != nil {
			return err
		}
		root, err := loadTree(app.fs, cfg.Input)
		if err != nil {
			return err
		}
		listPlugins(cmd.OutOrStdout(), selectPlugins(root, cfg.Suffix))
		return nil
	}
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const (
		longDesc = `Generate shell completion scripts for plugin-docs.

The output should be evaluated by your shell. For example:

  # bash
  plugin-docs completion bash > /usr/local/etc/bash_completion.d/plugin-docs

  # zsh
  plugin-docs completion zsh > "${fpath[1]}/_plugin-docs"

  # fish
  plugin-docs completion fish | source

  # PowerShell
  plugin-docs completion powershell | Out-String | Invoke-Expression
`
	)
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.ExactValidArgs(1),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command (suitable for publishing CLI docs).

Example:

  plugin-docs gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return errors.New("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return errors.Errorf("create docs directory: %w", err)
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
