package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"recordar/internal/notify"
	"recordar/internal/sched"
)

// watchCmd represents the watch command.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the notification watch loop",
	Long: `Run the watch loop in the foreground. It periodically rescans the
store, arms a timer for every reminder with a future schedule, and
delivers a webhook notification when a timer fires.

Configure the delivery target with environment variables:
  RECORDAR_NOTIFY_URL    webhook URL (required for delivery)
  RECORDAR_NOTIFY_TYPE   discord, slack, or generic (default: generic)
  RECORDAR_WATCH_SPEC    rescan cron expression with seconds

Stop with Ctrl-C.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// runWatch handles the watch loop.
func runWatch(cmd *cobra.Command, args []string) error {
	dispatcher := notify.NewDispatcher(ctx.Config.Notify, ctx.Config.HTTP)

	svc := sched.NewTimerService(dispatcher, ctx.Clock)
	defer svc.Stop()

	scheduler := sched.New(svc)
	svc.OnFire(scheduler.MarkFired)
	ctx.AttachScheduler(scheduler)

	if err := svc.Ready(); err != nil && !ctx.IsJSON() {
		ctx.Formatter.Printf("Warning: %v\n", err)
		ctx.Formatter.Println("Notifications will be scheduled but not delivered.")
		ctx.Formatter.Println("")
	}

	watcher := sched.NewWatcher(ctx.Store, scheduler, ctx.Clock)
	if err := watcher.Start(ctx.Config.Watch.Spec); err != nil {
		return err
	}
	defer watcher.Stop()

	if !ctx.IsJSON() {
		ctx.Formatter.Printf("Watching %d reminders. Press Ctrl-C to stop.\n",
			len(ctx.Store.List(false)))
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	if !ctx.IsJSON() {
		ctx.Formatter.Println("Stopping.")
	}
	return nil
}
