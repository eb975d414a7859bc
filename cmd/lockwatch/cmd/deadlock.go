package cmd

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Flarky55/lockwatch"
)

// deadlockCmd builds a genuine lock-ordering deadlock between two locks.
// Both stuck writers get a watchdog report; the stuck goroutines are then
// abandoned and the process exits (the watchdog is observational only, it
// cannot unwedge anything).
var deadlockCmd = &cobra.Command{
	Use:   "deadlock",
	Short: "Two locks acquired in opposite order: a real deadlock, reported",
	RunE:  runDeadlock,
}

func runDeadlock(cmd *cobra.Command, args []string) error {
	a := lockwatch.New("a", lockwatch.WithName("demo-lock-a"), lockwatch.WithGrace(grace))
	b := lockwatch.New("b", lockwatch.WithName("demo-lock-b"), lockwatch.WithGrace(grace))
	defer a.Close()
	defer b.Close()

	go func() {
		ga := a.Write()
		defer ga.Unlock()
		time.Sleep(50 * time.Millisecond)
		log.Info().Msg("goroutine 1: holding A, requesting B")
		gb := b.Write()
		defer gb.Unlock()
	}()

	go func() {
		gb := b.Write()
		defer gb.Unlock()
		time.Sleep(50 * time.Millisecond)
		log.Info().Msg("goroutine 2: holding B, requesting A")
		ga := a.Write()
		defer ga.Unlock()
	}()

	// Wait out the grace period plus slack so both reports land.
	time.Sleep(grace + time.Second)

	fmt.Println("deadlocked goroutines are left behind; exiting")
	fmt.Printf("lock A stats: %+v\n", a.Stats())
	fmt.Printf("lock B stats: %+v\n", b.Stats())
	return nil
}
