// Package cmd contains the CLI commands for the lockwatch demos.
package cmd

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Flarky55/lockwatch"
)

var (
	// Global flags
	verbose bool
	grace   time.Duration
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "lockwatch",
	Short: "Deadlock-detection demos for the lockwatch library",
	Long: `lockwatch runs small concurrency scenarios against the instrumented
reader/writer lock so you can see its watchdog reports in action.

Each scenario prints what it is doing; watchdog diagnostics appear on
stderr when an acquisition blocks past the grace period.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(setupLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().DurationVar(&grace, "grace", 500*time.Millisecond, "watchdog grace period")

	rootCmd.AddCommand(contentionCmd)
	rootCmd.AddCommand(deadlockCmd)
	rootCmd.AddCommand(readersCmd)
}

func setupLogging() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	lockwatch.SetDefaultLogger(log.Logger)
}
