package main

import (
	"fmt"
	"os"

	"github.com/example/table-reservations/internal/clock"
	"github.com/example/table-reservations/internal/interfaces/cli"
)

func main() {
	if err := cli.NewRoot(clock.NewSystem()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
