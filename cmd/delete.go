package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Delete command flags.
var deleteFlagForce bool

// deleteCmd represents the delete command.
var deleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm", "remove"},
	Short:   "Move a reminder to the trash",
	Long: `Move a reminder to the trash. The ID may be a unique prefix.

Deleted reminders keep their data and can be brought back with
'recordar restore'. Any pending notification for the reminder is
cancelled.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

// restoreCmd brings a reminder back from the trash.
var restoreCmd = &cobra.Command{
	Use:   "restore ID",
	Short: "Restore a reminder from the trash",
	Args:  cobra.ExactArgs(1),
	RunE:  runRestore,
}

// purgeCmd permanently removes a reminder.
var purgeCmd = &cobra.Command{
	Use:   "purge ID",
	Short: "Permanently remove a reminder",
	Long: `Permanently remove a reminder from the store. This cannot be undone.

Purging a reminder that is already gone is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runPurge,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteFlagForce, "force", "f", false,
		"Skip confirmation")

	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(purgeCmd)
}

// runDelete handles soft-deleting a reminder.
func runDelete(cmd *cobra.Command, args []string) error {
	r, err := ctx.Store.Resolve(args[0])
	if err != nil {
		return err
	}

	if !deleteFlagForce && !ctx.IsJSON() {
		ctx.Formatter.Printf("Move reminder %q to trash? [y/N] ", r.Text)
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			ctx.Formatter.Println("Cancelled.")
			return nil
		}
	}

	if err := ctx.Store.SoftDelete(r.ID); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"status": "trashed",
			"id":     r.ID,
			"text":   r.Text,
		})
	}

	ctx.Formatter.Printf("Moved to trash: %s\n", r.Text)
	return nil
}

// runRestore handles restoring a reminder.
func runRestore(cmd *cobra.Command, args []string) error {
	r, err := ctx.Store.Resolve(args[0])
	if err != nil {
		return err
	}

	if err := ctx.Store.Restore(r.ID); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"status": "restored",
			"id":     r.ID,
			"text":   r.Text,
		})
	}

	ctx.Formatter.Printf("Restored: %s\n", r.Text)
	return nil
}

// runPurge handles permanently removing a reminder.
func runPurge(cmd *cobra.Command, args []string) error {
	r, err := ctx.Store.Resolve(args[0])
	if err != nil {
		return err
	}

	if err := ctx.Store.Purge(r.ID); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"status": "purged",
			"id":     r.ID,
		})
	}

	ctx.Formatter.Printf("Purged: %s\n", r.Text)
	return nil
}
