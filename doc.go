// # plugin-docs
//
// `plugin-docs` renders the API reference pages of a plugin library from the
// JSON declaration tree a TypeDoc-style extractor produces. One HTML fragment
// is written per plugin; a site build embeds the fragments into its own
// templates and styles.
//
// ## Usage
//
//	go run . [flags]
//
// With no flags the tool reads `docs.json` and writes
// `site/docs/apis/<key>/api.html` for every top-level declaration whose name
// ends with `Plugin`. The key is the declaration name split on capital
// letters with the trailing word dropped, so `LocalNotificationsPlugin` is
// written to `site/docs/apis/local-notifications/api.html`.
//
// ## Fragments
//
// A fragment contains, in order:
//
//   - a container labelled with the plugin name;
//   - one block per method with a signature line and a parameter list (only
//     the first call signature of an overloaded method is documented);
//   - one `interface Name { ... }` block per structural type the methods
//     reference, each listed once, in the order the methods first mention
//     them. `addListener` and `removeListener` are visited last.
//
// Type references are emitted as `<api-type type-id="ID">Name</api-type>` so
// the site can turn them into links. `Promise` is never expanded.
//
// ## Configuration
//
// Settings are read from `plugin-docs.yaml` in the working directory when it
// exists (or from `--config`):
//
//	input: docs.json
//	out: site/docs/apis
//	suffix: Plugin
//	file_name: api.html
//
// Flags given on the command line win over the file.
//
// ## Checking for Drift
//
// `--check` renders every fragment and prints a unified diff for each one that
// differs from the file on disk instead of writing it. The command fails when
// any fragment is stale, which makes it suitable for CI.
//
// ## Other Commands
//
//   - `list`: print each documentable declaration with its key and method
//     count.
//   - `completion bash|zsh|fish|powershell`: shell completion scripts.
//   - `gen-docs DIR`: Markdown reference for the CLI itself.
package main
