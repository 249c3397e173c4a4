// Package cli implements the anytree command-line interface.
//
// The CLI loads tree outlines from TOML manifests and offers commands to
// render them as text or Graphviz output, resolve path expressions
// against them, and print structural statistics. All commands support
// --verbose (-v) for debug-level logging; loggers travel through
// context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Typically called by the main package with values injected via ldflags
// at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the anytree CLI and returns an error if any command
// fails. It wires the root command with the render, resolve and info
// subcommands, configures logging based on --verbose, and executes the
// command tree with ctx.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "anytree",
		Short:        "anytree inspects and renders tree outlines",
		Long:         `anytree loads tree outlines from TOML manifests and renders them as text trees or Graphviz diagrams, resolves slash-delimited path expressions against them, and reports structural statistics.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("anytree %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newResolveCmd())
	root.AddCommand(newInfoCmd())

	return root
}
