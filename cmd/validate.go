// Package cmd — validate command.
// Runs the marker validator against a rendered story document and
// reports errors and warnings.
package cmd

import (
	"fmt"
	"os"

	"github.com/gaurav-prasanna/storypress/core/validate"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a rendered story document",
	Long: `Validate checks a rendered story document for the structural markers a
stories viewer requires. Missing required markers are errors; missing
optional markers (structured data, canonical link) are warnings.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	result := validate.Validate(string(data))

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stdout, "warning: %s\n", w)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "error: %s\n", e)
	}

	if !result.IsValid {
		return fmt.Errorf("%s is not a valid story document (%d errors)", args[0], len(result.Errors))
	}
	fmt.Fprintf(os.Stdout, "✓ %s is a valid story document\n", args[0])
	return nil
}
