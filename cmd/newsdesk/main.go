// Command newsdesk runs the news service and its maintenance tasks.
//
// Usage:
//
//	newsdesk serve [--migrate]
//	newsdesk migrate
//	newsdesk refresh
//	newsdesk consolidate
//	newsdesk promote <username>
//	newsdesk reset-tokens
//
// Configuration is read from CONFIG_PATH, a .env file and the environment.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
