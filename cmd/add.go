package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"recordar/internal/clock"
	"recordar/internal/errors"
	"recordar/internal/output"
	"recordar/internal/parser"
	"recordar/internal/validate"
)

// Add command flags.
var (
	addFlagDate string
	addFlagTime string
	addFlagTag  string
)

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:     "add TEXT...",
	Aliases: []string{"a", "new"},
	Short:   "Add a reminder",
	Long: `Add a reminder, optionally scheduled for a date and a time of day.

A schedule in the past is rejected. With only a date, today and later are
accepted. With only a time, the next occurrence of that minute is assumed.

Date and time accept natural language:
  - Dates: "2026-01-15", "tomorrow", "next monday"
  - Times: "17:30", "5pm", "9am"

Examples:
  recordar add "Water the plants"
  recordar add "Call the dentist" --date tomorrow --time 10am --tag health
  recordar add "Standup" --time 9:30`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addFlagDate, "date", "d", "",
		"Schedule date (e.g. 'tomorrow', '2026-01-15')")
	addCmd.Flags().StringVarP(&addFlagTime, "time", "t", "",
		"Schedule time of day (e.g. '17:30', '5pm', 'default' for now+1m)")
	addCmd.Flags().StringVar(&addFlagTag, "tag", "",
		"Tag for grouping reminders")

	rootCmd.AddCommand(addCmd)
}

// runAdd handles creating a new reminder.
func runAdd(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")

	if err := validate.Tag(addFlagTag); err != nil {
		return err
	}

	now := ctx.Clock.Now()

	var date, timeOfDay *time.Time
	if addFlagDate != "" {
		d, err := parser.Date(addFlagDate, now)
		if err != nil {
			return err
		}
		date = &d
	}
	if addFlagTime != "" {
		tod, err := parseTimeFlag(addFlagTime, now)
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

	r, err := ctx.Store.Create(text, addFlagTag, date, timeOfDay)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(r)
	}

	ctx.Formatter.Printf("Added: %s (%s)\n", r.Text, r.ShortID())
	if r.HasSchedule() {
		ctx.Formatter.Printf("Scheduled: %s\n", output.FormatSchedule(r.Date, r.Time))
		ctx.Formatter.Println("Run 'recordar watch' to deliver notifications.")
	}
	return nil
}

// deref returns *t, or fallback when t is nil.
func deref(t *time.Time, fallback time.Time) time.Time {
	if t != nil {
		return *t
	}
	return fallback
}

// parseTimeFlag parses a --time value. "default" selects one minute
// from now, the same default a freshly enabled time picker gets.
func parseTimeFlag(value string, now time.Time) (time.Time, error) {
	if value == "default" {
		return clock.DefaultTime(ctx.Clock), nil
	}
	return parser.TimeOfDay(value, now)
}
