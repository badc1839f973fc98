package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RouletteCampaign_Go/internal/event"
	"github.com/osse101/RouletteCampaign_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	Handlers           *EventHandlers
	ResilientPublisher *event.ResilientPublisher
	DBPool             *pgxpool.Pool
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down components in order:
// 0. Live stream hub (releases long-lived SSE connections)
// 1. HTTP server (stop accepting new requests)
// 2. Event publisher (flush pending events to ensure consistency)
// 3. Scheduled jobs and the workers that run them
// 4. Database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Handlers != nil && components.Handlers.Hub != nil {
		slog.Info(LogMsgStoppingStreamHub)
		components.Handlers.Hub.Stop()
	}

	// Shutdown server (stop accepting new requests)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	// Retries may still enqueue notifications, so the publisher goes before the pool
	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if h := components.Handlers; h != nil {
		if h.Scheduler != nil {
			slog.Info(LogMsgStoppingScheduler)
		}
		h.stopMaintenance()

		if h.NotifyPool != nil {
			slog.Info(LogMsgShuttingDownNotifier)
			h.NotifyPool.Stop()
		}
	}

	if components.DBPool != nil {
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
