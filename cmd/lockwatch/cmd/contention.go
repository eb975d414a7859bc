package cmd

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Flarky55/lockwatch"
)

var holdFor time.Duration

// contentionCmd reproduces the classic slow-writer scenario: one writer
// holds the lock past the grace period while a second writer waits.
var contentionCmd = &cobra.Command{
	Use:   "contention",
	Short: "Two writers, one slow: triggers a single watchdog report",
	RunE:  runContention,
}

func init() {
	contentionCmd.Flags().DurationVar(&holdFor, "hold", 2*time.Second, "how long the first writer holds the lock")
}

func runContention(cmd *cobra.Command, args []string) error {
	lock := lockwatch.New(0, lockwatch.WithName("demo-contention"), lockwatch.WithGrace(grace))
	defer lock.Close()

	release := lockwatch.NewCleanup(func() {
		log.Info().Msg("scenario finished")
	})
	defer release.Release()

	done := make(chan struct{})
	go func() {
		defer close(done)
		g := lock.Write()
		g.Set(1)
		log.Info().Dur("hold", holdFor).Msg("writer A acquired, holding")
		time.Sleep(holdFor)
		g.Unlock()
		log.Info().Msg("writer A released")
	}()

	time.Sleep(100 * time.Millisecond)

	log.Info().Msg("writer B requesting lock")
	g := lock.Write()
	g.Set(*g.Value() + 1)
	val := *g.Value()
	g.Unlock()
	<-done

	fmt.Printf("final value: %d\n", val)
	fmt.Printf("stats: %+v\n", lock.Stats())
	return nil
}
