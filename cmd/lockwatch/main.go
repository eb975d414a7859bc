// Package main is the entry point for the lockwatch demo CLI.
package main

import (
	"fmt"
	"os"

	"github.com/Flarky55/lockwatch/cmd/lockwatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
