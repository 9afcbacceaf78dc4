// Command dstarlite plans routes over grid scenarios with the D* Lite
// incremental planner and replans as the terrain changes.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
)

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := log.New()
	logger.SetOutput(os.Stderr)

	cmd := newRootCmd(logger, version)
	if err := cmd.ExecuteContext(ctx); err != nil {
		logger.WithError(err).Error("dstarlite failed")
		cancel()
		os.Exit(1)
	}
}
