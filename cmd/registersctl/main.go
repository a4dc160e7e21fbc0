// Command registersctl runs the out-of-band jobs: reminder generation,
// document backups and database migrations. It is meant to be invoked by an
// external scheduler such as cron.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(openJobs).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
