package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	calc "github.com/blueset/calc-sub004"
	"github.com/spf13/cobra"
)

var evalVerbose bool

var evalCmd = &cobra.Command{
	Use:   "eval [file]",
	Short: "Evaluate a document and print its results",
	Long: `Evaluate a document file or stdin and print each expression
line's result.

Examples:
  calc eval notes.calc        Evaluate a file
  calc eval -v notes.calc     Also print non-expression lines
  echo "x = 10" | calc eval   Evaluate from stdin`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return runEval(args)
	},
}

func init() {
	evalCmd.Flags().BoolVarP(&evalVerbose, "verbose", "v", false, "Also print heading and blank lines")
	rootCmd.AddCommand(evalCmd)
}

func runEval(args []string) error {
	var input string
	if len(args) > 0 {
		bytes, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read file: %w", err)
		}
		input = string(bytes)
	} else {
		bytes, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		input = string(bytes)
		if strings.TrimSpace(input) == "" {
			return fmt.Errorf("no input provided")
		}
	}

	result, err := calc.Eval(input)
	if err != nil {
		return fmt.Errorf("eval: %w", err)
	}

	for _, ln := range result.Lines {
		switch {
		case ln.Rendered != "":
			fmt.Printf("%s\n  %s\n", ln.Text, ln.Rendered)
		case evalVerbose:
			fmt.Println(ln.Text)
		}
	}
	return nil
}
