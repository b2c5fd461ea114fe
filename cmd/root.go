// Package cmd provides the CLI commands for recordar.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"recordar/internal/errors"
	"recordar/internal/logging"
	"recordar/internal/output"
	"recordar/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDB     string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "recordar",
	Short: "A note and reminder keeper with scheduled notifications",
	Long: `Recordar keeps short notes with optional date and time schedules and
delivers a notification when a schedule comes due.

Examples:
  recordar add "Water the plants" --date tomorrow --time 9am
  recordar add "Call the dentist" --tag health
  recordar list
  recordar delete 3f2a1b
  recordar watch`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		default:
			format = output.FormatCLI
		}

		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug
		if flagDB != "" {
			opts.DBPathSet = true
			if flagDB == ":memory:" {
				opts.InMemory = true
			} else {
				opts.DBPath = flagDB
			}
		}

		var err error
		ctx, err = runtime.New(opts)
		if err != nil {
			return err
		}

		level := logging.ParseLevel(ctx.Config.Log.Level)
		if flagDebug {
			level = slog.LevelDebug
		}
		logging.Init(logging.Config{
			Level:  level,
			JSON:   ctx.Config.Log.JSON,
			Output: os.Stderr,
		})

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: list active reminders
		return runList(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "",
		"Database directory (':memory:' for in-memory)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("recordar %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// Die prints an error and exits.
func Die(err error) {
	msg := err.Error()
	if verr, ok := errors.AsValidation(err); ok && verr.Suggestion != "" {
		msg += "\n  " + verr.Suggestion
	}
	os.Stderr.WriteString("Error: " + msg + "\n")
	os.Exit(1)
}
