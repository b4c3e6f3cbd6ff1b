// Package signal ties a context to the process's interrupt signals.
package signal

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// exit is replaced in tests.
var exit = os.Exit

// RunWithContext calls action with a context that is cancelled on the first
// SIGINT or SIGTERM, so running draw loops can restore the terminal and
// return. A second signal exits immediately with status 130.
func RunWithContext(action func(context.Context) error) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-done:
			return
		}
		select {
		case <-sigChan:
			exit(130)
		case <-done:
		}
	}()

	return action(ctx)
}
