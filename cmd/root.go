// Package cmd implements the CLI commands for StoryPress using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storypress",
	Short: "StoryPress — convert articles into web stories",
	Long: `StoryPress converts rich-text articles into slide-based web stories:
it segments the article body into slides and renders them as an
AMP-story document (or JSON, Markdown storyboard, PDF storyboard).

Usage:
  storypress generate <url> [flags]
  storypress validate <file>
  storypress templates`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
