package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "calc [file]",
	Short: "calc - a notebook calculator with units, currencies and dates",
	Long: `calc evaluates a document of markdown headings and calculator
expressions line by line, carrying variables from earlier lines into
later ones.

Examples:
  calc                       Start an interactive REPL
  calc eval notes.calc       Evaluate a file and print its results
  calc eval < input.calc     Evaluate from stdin`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		if len(args) > 0 {
			return runEval(args)
		}
		return runREPL()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
