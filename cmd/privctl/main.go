package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/hnrobert/privmgr/internal/commands"
	"github.com/hnrobert/privmgr/internal/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	interruptCh := make(chan os.Signal, 1)
	signal.Notify(interruptCh, os.Interrupt)

	go func() {
		select {
		case <-interruptCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	defer logger.Close()

	if err := commands.NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
