package cmd

import (
	"github.com/spf13/cobra"

	"recordar/internal/tui"
)

// browseCmd represents the browse command.
var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"b", "ui"},
	Short:   "Browse reminders interactively",
	Long: `Open an interactive terminal browser over the reminder list.

Keys:
  j/k    move the cursor
  t      toggle between reminders and the trash
  d      move the selected reminder to the trash
  r      restore the selected reminder (trash view)
  p      purge the selected reminder (trash view)
  q      quit`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

// runBrowse starts the interactive browser.
func runBrowse(cmd *cobra.Command, args []string) error {
	return tui.Run(tui.BrowserConfig{Store: ctx.Store})
}
