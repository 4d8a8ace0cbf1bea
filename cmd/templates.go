// Package cmd — templates command.
// Lists the built-in story templates.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/gaurav-prasanna/storypress/core/templates"
	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in story templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, t := range templates.Builtin() {
			fmt.Fprintf(os.Stdout, "%-10s %-10s bg=%s text=%s accent=%s animations=%s\n",
				t.ID, t.Name,
				t.Config.BackgroundColor, t.Config.TextColor, t.Config.AccentColor,
				strings.Join(t.Config.Animations, ","))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
