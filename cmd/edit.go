package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"recordar/internal/errors"
	"recordar/internal/output"
	"recordar/internal/parser"
	"recordar/internal/validate"
)

// Edit command flags.
var (
	editFlagText      string
	editFlagDate      string
	editFlagTime      string
	editFlagClearDate bool
	editFlagClearTime bool
)

// editCmd represents the edit command.
var editCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a reminder",
	Long: `Edit a reminder's text or schedule. The ID may be a unique prefix.

The new schedule is validated the same way as on creation; a schedule
in the past is rejected and the reminder is left unchanged. Use
--clear-date or --clear-time to drop a schedule component.

Examples:
  recordar edit 3f2a1b --text "Call the dentist office"
  recordar edit 3f2a1b --date "next friday" --time 2pm
  recordar edit 3f2a1b --clear-time`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editFlagText, "text", "",
		"New reminder text")
	editCmd.Flags().StringVarP(&editFlagDate, "date", "d", "",
		"New schedule date")
	editCmd.Flags().StringVarP(&editFlagTime, "time", "t", "",
		"New schedule time of day")
	editCmd.Flags().BoolVar(&editFlagClearDate, "clear-date", false,
		"Remove the schedule date")
	editCmd.Flags().BoolVar(&editFlagClearTime, "clear-time", false,
		"Remove the schedule time")

	rootCmd.AddCommand(editCmd)
}

// runEdit handles editing a reminder.
func runEdit(cmd *cobra.Command, args []string) error {
	existing, err := ctx.Store.Resolve(args[0])
	if err != nil {
		return err
	}

	text := existing.Text
	if editFlagText != "" {
		text = strings.TrimSpace(editFlagText)
	}

	now := ctx.Clock.Now()

	date := existing.Date
	switch {
	case editFlagClearDate:
		date = nil
	case editFlagDate != "":
		d, err := parser.Date(editFlagDate, now)
		if err != nil {
			return err
		}
		date = &d
	}

	timeOfDay := existing.Time
	switch {
	case editFlagClearTime:
		timeOfDay = nil
	case editFlagTime != "":
		tod, err := parseTimeFlag(editFlagTime, now)
		if err != nil {
			return err
		}
		timeOfDay = &tod
	}

	if !validate.DateTime(now, date != nil, deref(date, now), timeOfDay != nil, deref(timeOfDay, now)) {
		return errors.NewValidationError(
			"the selected schedule is in the past",
			"pick a future date or time")
	}

	r, err := ctx.Store.Update(existing.ID, text, date, timeOfDay)
	if err != nil {
		return err
	}

	// A running watch loop picks up the new schedule on its next rescan;
	// the old trigger is cancelled when the scheduler reschedules.
	if ctx.Scheduler != nil {
		if _, err := ctx.Scheduler.Reschedule(r); err != nil {
			return err
		}
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(r)
	}

	ctx.Formatter.Printf("Updated: %s (%s)\n", r.Text, r.ShortID())
	if r.HasSchedule() {
		ctx.Formatter.Printf("Scheduled: %s\n", output.FormatSchedule(r.Date, r.Time))
	}
	return nil
}
