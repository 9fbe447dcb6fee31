// Command measure converts and computes typed physical quantities.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/xraph/measure/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.New().Execute(ctx, os.Args[1:]); err != nil {
		stop()
		os.Exit(1)
	}
}
