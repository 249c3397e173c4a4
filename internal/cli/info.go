package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lysh/anytree/pkg/tree"
)

// newInfoCmd creates the info command, printing structural statistics
// for a tree manifest.
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [manifest]",
		Short: "Show structural statistics for a tree manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadOutline(args[0])
			if err != nil {
				return err
			}

			nodes, leaves, maxDepth := 0, 0, 0
			for n := range tree.PreOrder(root) {
				nodes++
				if n.IsLeaf() {
					leaves++
				}
				if d := n.Depth(); d > maxDepth {
					maxDepth = d
				}
			}

			fmt.Println(styleTitle.Render(root.Name()))
			printKeyValue("nodes", styleNumber.Render(fmt.Sprintf("%d", nodes)))
			printKeyValue("leaves", styleNumber.Render(fmt.Sprintf("%d", leaves)))
			printKeyValue("height", styleNumber.Render(fmt.Sprintf("%d", root.Height())))
			printKeyValue("max depth", styleNumber.Render(fmt.Sprintf("%d", maxDepth)))
			return nil
		},
	}
}
