package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "prettier",
	Short: "An opinionated HTML formatter",
	Long: `Prettier re-flows HTML documents to a target width while keeping
every whitespace-significant byte intact: inline boundaries, verbatim
<pre> content and blank-line structure survive reformatting.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {}
