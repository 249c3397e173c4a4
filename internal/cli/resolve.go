package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lysh/anytree/pkg/resolve"
)

// resolveOpts holds the command-line flags for the resolve command.
type resolveOpts struct {
	from     string // path of the node to resolve from (default: root)
	glob     bool   // use wildcard resolution
	pathattr string // metadata attribute used as path key
}

// newResolveCmd creates the resolve command, looking up nodes in a
// manifest by slash-delimited path expressions.
func newResolveCmd() *cobra.Command {
	var opts resolveOpts

	cmd := &cobra.Command{
		Use:   "resolve [manifest] [path]",
		Short: "Resolve a path expression against a tree manifest",
		Long: `Resolve looks up nodes by slash-delimited paths, relative to the
manifest root or to the node given with --from. With --glob, the path
may contain the wildcards * and ? and all matching nodes are printed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args[0], args[1], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "resolve relative to this node (a path from the root)")
	cmd.Flags().BoolVar(&opts.glob, "glob", false, "treat the path as a wildcard expression")
	cmd.Flags().StringVar(&opts.pathattr, "pathattr", "name", "metadata attribute used as path key")

	return cmd
}

func runResolve(cmd *cobra.Command, manifest, path string, opts *resolveOpts) error {
	logger := loggerFromContext(cmd.Context())

	root, err := loadOutline(manifest)
	if err != nil {
		return err
	}

	r := resolve.New(opts.pathattr)
	start := root
	if opts.from != "" {
		start, err = r.Get(root, opts.from)
		if err != nil {
			return fmt.Errorf("resolve --from: %w", err)
		}
	}
	logger.Debug("resolving", "path", path, "from", start.Name(), "glob", opts.glob)

	if !opts.glob {
		node, err := r.Get(start, path)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), node)
		return nil
	}

	nodes, err := r.Glob(start, path)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		fmt.Fprintln(cmd.OutOrStdout(), n)
	}
	logger.Debug("resolved", "matches", len(nodes))
	return nil
}
