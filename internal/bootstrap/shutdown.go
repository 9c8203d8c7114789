package bootstrap

import (
	"context"
	"log/slog"

	"github.com/getgifts/starcase/internal/pvp"
	"github.com/getgifts/starcase/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown
type ShutdownComponents struct {
	Server     *server.Server
	PvPService pvp.Service
}

// GracefulShutdown stops components in dependency order: the HTTP server
// first so no new work arrives, then the match service so pending deadline
// timers drain. Errors are logged but never stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.PvPService != nil {
		if err := components.PvPService.Shutdown(ctx); err != nil {
			slog.Error("pvp"+LogMsgServiceShutdownFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
