package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lysh/anytree/pkg/render"
	"github.com/lysh/anytree/pkg/render/dot"
	"github.com/lysh/anytree/pkg/tree"
)

const (
	formatText = "text"
	formatDOT  = "dot"
	formatSVG  = "svg"
)

var styleNames = map[string]render.Style{
	"ascii":  render.ASCIIStyle,
	"cont":   render.ContStyle,
	"round":  render.ContRoundStyle,
	"double": render.DoubleStyle,
}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path; empty means stdout
	style    string // glyph set: ascii, cont, round, double
	format   string // output format: text, dot, svg
	reverse  bool   // render children in reverse declaration order
	sort     bool   // render children sorted by name
	showMeta bool   // include metadata in dot/svg labels
}

// newRenderCmd creates the render command, producing a text tree (or a
// Graphviz DOT/SVG diagram) from a TOML manifest.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{style: "cont", format: formatText}

	cmd := &cobra.Command{
		Use:   "render [manifest]",
		Short: "Render a tree manifest as text or Graphviz output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := styleNames[opts.style]; !ok {
				return fmt.Errorf("unknown style %q (want ascii, cont, round or double)", opts.style)
			}
			switch opts.format {
			case formatText, formatDOT, formatSVG:
			default:
				return fmt.Errorf("unknown format %q (want text, dot or svg)", opts.format)
			}
			return runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.style, "style", opts.style, "glyph set: cont (default), ascii, round, double")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text (default), dot, svg")
	cmd.Flags().BoolVar(&opts.reverse, "reverse", false, "render children in reverse order")
	cmd.Flags().BoolVar(&opts.sort, "sort", false, "render children sorted by name")
	cmd.Flags().BoolVar(&opts.showMeta, "meta", false, "include metadata in dot/svg labels")

	return cmd
}

func runRender(cmd *cobra.Command, path string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	root, err := loadOutline(path)
	if err != nil {
		return err
	}
	logger.Debug("manifest loaded", "path", path, "nodes", len(root.Descendants())+1)

	var out []byte
	switch opts.format {
	case formatText:
		out = []byte(renderText(root, opts) + "\n")
	case formatDOT:
		out = []byte(dot.ToDOT(root, dot.Options{ShowMeta: opts.showMeta}))
	case formatSVG:
		sp := newSpinner(ctx, "rendering SVG")
		sp.start()
		svg, err := dot.RenderSVG(ctx, dot.ToDOT(root, dot.Options{ShowMeta: opts.showMeta}))
		sp.stop()
		if err != nil {
			return err
		}
		out = svg
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(opts.output, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	prog.done(fmt.Sprintf("Rendered %s", path))
	printSuccess("wrote %s output", opts.format)
	printFile(opts.output)
	return nil
}

func renderText(root *tree.Node, opts *renderOpts) string {
	ropts := render.Options{Style: styleNames[opts.style]}
	switch {
	case opts.reverse:
		ropts.ChildIter = render.Reversed
	case opts.sort:
		ropts.ChildIter = render.SortedBy(func(a, b *tree.Node) int {
			return strings.Compare(a.Name(), b.Name())
		})
	}

	var lines []string
	for row := range render.New(root, ropts).All() {
		lines = append(lines, row.Pre+row.Node.Name())
	}
	return strings.Join(lines, "\n")
}
