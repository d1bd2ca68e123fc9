package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"github.com/rivethealth/prettier/markup"
)

// treeCmd represents the tree command
var treeCmd = &cobra.Command{
	Use:   "tree [html_file]",
	Short: "Dump the annotated tree",
	Long: `Parse and annotate an HTML file, then dump the resulting tree with
the whitespace-sensitivity flags the printer will see. Useful when a
formatting decision looks surprising.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			os.Exit(1)
		}

		root, err := markup.Parse(string(src))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing: %v\n", err)
			os.Exit(1)
		}
		markup.Annotate(root)

		tp := treeprint.NewWithRoot(describe(root))
		addChildren(tp, root)
		fmt.Print(tp.String())
	},
}

func addChildren(branch treeprint.Tree, n *markup.Node) {
	for _, c := range n.Children {
		sub := branch.AddBranch(describe(c))
		for _, a := range c.Attrs {
			sub.AddNode(describe(a))
		}
		addChildren(sub, c)
	}
}

// describe renders one node with its payload and abbreviated flags:
// L/T leading/trailing space sensitive, l/t has leading/trailing spaces,
// W whitespace sensitive, I indentation sensitive.
func describe(n *markup.Node) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s", n.Kind)
	switch n.Kind {
	case markup.KindTag, markup.KindConditionalComment:
		fmt.Fprintf(&b, " <%s>", n.Name)
		if n.IsSelfClosing {
			b.WriteString(" self-closing")
		}
	case markup.KindText, markup.KindComment, markup.KindDirective:
		fmt.Fprintf(&b, " %q", truncate(n.Data, 40))
	case markup.KindAttribute:
		if n.HasValue {
			fmt.Fprintf(&b, " %s=%q", n.Key, truncate(n.Value, 30))
		} else {
			fmt.Fprintf(&b, " %s", n.Key)
		}
	case markup.KindYaml, markup.KindToml:
		fmt.Fprintf(&b, " %q", truncate(n.Data, 40))
	}

	var flags []string
	if n.IsLeadingSpaceSensitive {
		flags = append(flags, "L")
	}
	if n.IsTrailingSpaceSensitive {
		flags = append(flags, "T")
	}
	if n.HasLeadingSpaces {
		flags = append(flags, "l")
	}
	if n.HasTrailingSpaces {
		flags = append(flags, "t")
	}
	if n.IsWhiteSpaceSensitive {
		flags = append(flags, "W")
	}
	if n.IsIndentationSensitive {
		flags = append(flags, "I")
	}
	if len(flags) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(flags, ""))
	}
	fmt.Fprintf(&b, " @%d:%d", n.Start.Line, n.Start.Column)
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
