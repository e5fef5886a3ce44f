package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-skiff/skiff/pkg/config"
	"github.com/go-skiff/skiff/pkg/engine"
	"github.com/go-skiff/skiff/pkg/rendertree"
)

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Parse an HTML file and print its render tree",
	Long: `Render parses the given HTML file (or stdin when the file is "-")
and prints the resulting render tree.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		if format != "text" && format != "json" {
			return fmt.Errorf("unknown format %q (want text or json)", format)
		}

		input, err := readInput(args[0])
		if err != nil {
			return err
		}

		configDir, _ := cmd.Flags().GetString("config-dir")
		resolved, err := config.Resolve(configDir)
		if err != nil {
			return err
		}

		e, err := engine.New(engine.Options{
			Stylesheet: resolved.Stylesheet,
			CacheSize:  resolved.CacheSize,
		})
		if err != nil {
			return err
		}

		tree, err := e.RenderHTML(input)
		if err != nil {
			return err
		}

		switch format {
		case "json":
			data, err := json.MarshalIndent(engine.SerializeTree(tree), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		default:
			printTree(cmd.OutOrStdout(), tree)
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().String("format", "text", "output format: text or json")
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// printTree writes one line per node, indented by depth.
func printTree(w io.Writer, tree *rendertree.Tree) {
	var walk func(n rendertree.Node, depth int)
	walk = func(n rendertree.Node, depth int) {
		indent := strings.Repeat("  ", depth)
		switch node := n.(type) {
		case *rendertree.TextNode:
			weight := "normal"
			if node.Bold {
				weight = "bold"
			}
			fmt.Fprintf(w, "%stext %q font=%q size=%.1f weight=%s\n",
				indent, node.Value, node.Font, node.FontSize, weight)
		default:
			fmt.Fprintf(w, "%s%s\n", indent, n.Kind())
		}
		n.VisitChildren(func(child rendertree.Node) {
			walk(child, depth+1)
		})
	}
	if tree.Root() != nil {
		walk(tree.Root(), 0)
	}
}
