package bootstrap

import (
	"context"

	"github.com/spinworks/SlotEngine_Go/internal/logger"
	"github.com/spinworks/SlotEngine_Go/internal/server"
)

// ShutdownComponents holds the components that need graceful shutdown
type ShutdownComponents struct {
	Server *server.Server
	Close  []func() // additional closers, run after the server stops
}

// GracefulShutdown stops the HTTP server first so no new requests arrive,
// then runs the remaining closers in order. Errors are logged but do not
// stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	logger.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			logger.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	for _, closeFn := range components.Close {
		closeFn()
	}

	logger.Info(LogMsgServerStopped)
}
