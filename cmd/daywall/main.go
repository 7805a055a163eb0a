package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/daywall/internal/app"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	configPath  string
	prefsPath   string
	pollSeconds int
)

var rootCmd = &cobra.Command{
	Use:   "daywall",
	Short: "Change the desktop wallpaper with the sun and moon",
	Long: `daywall walks a wallpaper pack through the day. Each pack lists images for
the stretches between midnight, moonset, sunrise, noon, sunset and moonrise;
daywall computes those instants for your location and switches images on
schedule. Without a subcommand it runs the scheduler in the foreground.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScheduler,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the wallpaper scheduler in the foreground",
	Long: `Run the wallpaper scheduler in the foreground until interrupted.

The scheduler exits with an error when a transit cannot be computed. At mid
latitudes the moon misses a rise or a set about twice a month, so expect
"can't get moonrise" or "can't get moonset" on those days.`,
	RunE: runScheduler,
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the scheduler with a live terminal view",
	Long: `Run the scheduler behind a terminal view of today's anchors, timeline and log.

Unlike run, a fatal scheduler error does not end the process: the error stays
on screen and the scheduler stays stopped until you quit.`,
	RunE: runWatch,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the daywall version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "daywall %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/daywall/config.toml)")
	rootCmd.PersistentFlags().StringVar(&prefsPath, "prefs", "", "TUI preferences file (default ~/.config/daywall/prefs.toml)")
	for _, cmd := range []*cobra.Command{rootCmd, runCmd, watchCmd} {
		cmd.Flags().IntVar(&pollSeconds, "poll", 0, "seconds between clock checks (overrides poll_seconds)")
	}
	rootCmd.AddCommand(runCmd, watchCmd, versionCmd)
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "daywall: %v\n", err)
		return 1
	}
	return 0
}

func options(cmd *cobra.Command) app.Options {
	return app.Options{
		ConfigPath: configPath,
		PrefsPath:  prefsPath,
		PollEvery:  pollSeconds,
		Stdout:     cmd.OutOrStdout(),
		Stderr:     cmd.ErrOrStderr(),
	}
}

func runScheduler(cmd *cobra.Command, _ []string) error {
	return app.Run(cmd.Context(), options(cmd))
}

func runWatch(cmd *cobra.Command, _ []string) error {
	return app.Watch(cmd.Context(), options(cmd))
}
