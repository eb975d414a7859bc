package cmd

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Flarky55/lockwatch"
)

var readerCount int

// readersCmd shows the quiet path: many concurrent readers, no writer,
// no watchdog output.
var readersCmd = &cobra.Command{
	Use:   "readers",
	Short: "N concurrent readers: all succeed, watchdogs stay silent",
	RunE:  runReaders,
}

func init() {
	readersCmd.Flags().IntVar(&readerCount, "n", 8, "number of concurrent readers")
}

func runReaders(cmd *cobra.Command, args []string) error {
	lock := lockwatch.New([]int{1, 2, 3}, lockwatch.WithName("demo-readers"), lockwatch.WithGrace(grace))
	defer lock.Close()

	var wg sync.WaitGroup
	for i := 0; i < readerCount; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			g := lock.Read()
			defer g.Unlock()
			log.Debug().Int("reader", i).Ints("value", g.Value()).Msg("read")
			time.Sleep(20 * time.Millisecond)
		}(i)
	}
	wg.Wait()

	fmt.Printf("%d readers done, stats: %+v\n", readerCount, lock.Stats())
	fmt.Print(lockwatch.DumpAllLocks())
	return nil
}
