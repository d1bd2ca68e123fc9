package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rivethealth/prettier/markup"
	"github.com/rivethealth/prettier/printer"
	"github.com/rivethealth/prettier/subfmt"
)

var (
	width    int
	tabWidth int
	useTabs  bool
	write    bool
)

// formatCmd represents the format command
var formatCmd = &cobra.Command{
	Use:   "format [html_file]",
	Short: "Format an HTML file",
	Long:  `Format an HTML file and print the result to stdout, or rewrite it in place with --write.`,
	Args:  cobra.ExactArgs(1),
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

		out, err := printer.Print(root, printer.Options{
			Width:    width,
			TabWidth: tabWidth,
			UseTabs:  useTabs,
			Embed:    subfmt.Embed(),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error printing: %v\n", err)
			os.Exit(1)
		}

		if write {
			if err := os.WriteFile(args[0], []byte(out), 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
				os.Exit(1)
			}
			return
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)

	formatCmd.Flags().IntVarP(&width, "width", "w", 80, "Target line width")
	formatCmd.Flags().IntVar(&tabWidth, "tab-width", 2, "Columns per indentation level")
	formatCmd.Flags().BoolVar(&useTabs, "use-tabs", false, "Indent with tabs instead of spaces")
	formatCmd.Flags().BoolVar(&write, "write", false, "Rewrite the file in place")
}
