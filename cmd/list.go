package cmd

import (
	"github.com/spf13/cobra"

	"recordar/internal/model"
	"recordar/internal/output"
)

// List command flags.
var (
	listFlagAll    bool
	listFlagSearch string
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List reminders",
	Long: `List active reminders. Use --all to include reminders in the trash,
or --search to filter by text.

Examples:
  recordar list
  recordar list --all
  recordar list --search dentist`,
	RunE: runList,
}

// trashCmd lists reminders in the trash.
var trashCmd = &cobra.Command{
	Use:   "trash",
	Short: "List reminders in the trash",
	RunE:  runTrash,
}

func init() {
	listCmd.Flags().BoolVarP(&listFlagAll, "all", "a", false,
		"Include reminders in the trash")
	listCmd.Flags().StringVarP(&listFlagSearch, "search", "s", "",
		"Filter by text (case-insensitive)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(trashCmd)
}

// runList handles listing reminders.
func runList(cmd *cobra.Command, args []string) error {
	var reminders []*model.Reminder
	if listFlagSearch != "" {
		reminders = ctx.Store.Search(listFlagSearch)
	} else {
		reminders = ctx.Store.List(listFlagAll)
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"reminders": reminders,
			"count":     len(reminders),
		})
	}

	if len(reminders) == 0 {
		ctx.Formatter.Println("No reminders.")
		ctx.Formatter.Println("")
		ctx.Formatter.Println("Create one with: recordar add \"Text\"")
		return nil
	}

	printReminders(reminders)
	return nil
}

// runTrash handles listing deleted reminders.
func runTrash(cmd *cobra.Command, args []string) error {
	reminders := ctx.Store.ListDeleted()

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"reminders": reminders,
			"count":     len(reminders),
		})
	}

	if len(reminders) == 0 {
		ctx.Formatter.Println("Trash is empty.")
		return nil
	}

	for _, r := range reminders {
		ctx.Formatter.Printf("  %s  %-30s deleted %s\n",
			r.ShortID(), truncate(r.Text, 30),
			r.DeletedAt.Format("2006-01-02 15:04"))
	}
	ctx.Formatter.Println("")
	ctx.Formatter.Printf("%d in trash\n", len(reminders))
	return nil
}

// printReminders prints a reminder table.
func printReminders(reminders []*model.Reminder) {
	for _, r := range reminders {
		sched := output.FormatSchedule(r.Date, r.Time)

		status := ""
		if r.IsDeleted {
			status = " [trash]"
		} else if r.Tag != "" {
			status = " #" + r.Tag
		}

		ctx.Formatter.Printf("  %s  %-30s %s%s\n",
			r.ShortID(), truncate(r.Text, 30), sched, status)
	}

	ctx.Formatter.Println("")
	ctx.Formatter.Printf("%d reminders\n", len(reminders))
}

// truncate truncates a string to maxLen characters.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
