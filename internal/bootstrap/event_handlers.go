package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/RouletteCampaign_Go/internal/config"
	"github.com/osse101/RouletteCampaign_Go/internal/event"
	"github.com/osse101/RouletteCampaign_Go/internal/eventlog"
	"github.com/osse101/RouletteCampaign_Go/internal/metrics"
	"github.com/osse101/RouletteCampaign_Go/internal/notify"
	"github.com/osse101/RouletteCampaign_Go/internal/roulette"
	"github.com/osse101/RouletteCampaign_Go/internal/scheduler"
	"github.com/osse101/RouletteCampaign_Go/internal/sse"
	"github.com/osse101/RouletteCampaign_Go/internal/worker"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus        event.Bus
	RouletteService roulette.Service
	EventLogService eventlog.Service
	Config          *config.Config
}

// EventHandlers holds subscribers and background jobs that need shutdown
type EventHandlers struct {
	// Hub fans winners and roulette changes out to live stream clients
	Hub *sse.Hub

	// NotifyPool is nil when no Discord webhook is configured
	NotifyPool *worker.Pool

	// MaintenancePool and Scheduler are nil when event log retention is disabled
	MaintenancePool *worker.Pool
	Scheduler       *scheduler.Scheduler
}

// RegisterEventHandlers sets up all event handlers and subscribers.
// This includes:
// - Metrics collector (for event-based metrics)
// - Roulette read model cache invalidation
// - Event logger (persists events to database) and its retention job
// - Live stream hub for public winner announcements
// - Discord winner notifier (only when a webhook is configured)
func RegisterEventHandlers(deps EventHandlerDependencies) (*EventHandlers, error) {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	deps.RouletteService.Subscribe(deps.EventBus)
	slog.Info(LogMsgRouletteCacheSubscribed)

	if err := deps.EventLogService.Subscribe(deps.EventBus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSubscribeEventLogger, err)
	}
	slog.Info(LogMsgEventLoggerInitialized)

	handlers := &EventHandlers{Hub: sse.NewHub()}
	handlers.Hub.Start()
	sse.NewSubscriber(handlers.Hub, deps.EventBus).Subscribe()

	if days := deps.Config.EventLogRetentionDays; days > 0 {
		handlers.MaintenancePool = worker.NewPool(MaintenanceWorkers, MaintenanceQueueSize)
		handlers.MaintenancePool.Start()
		handlers.Scheduler = scheduler.New(handlers.MaintenancePool)
		handlers.Scheduler.Schedule(deps.Config.EventLogCleanupInterval, eventlog.NewCleanupJob(deps.EventLogService, days), true)
		slog.Info(LogMsgEventLogCleanupScheduled,
			"retention_days", days,
			"interval", deps.Config.EventLogCleanupInterval)
	}

	notifyCfg := notify.Config{
		WebhookID:    deps.Config.DiscordWebhookID,
		WebhookToken: deps.Config.DiscordWebhookToken,
	}
	if !notifyCfg.Enabled() {
		slog.Info(LogMsgNotifierDisabled)
		return handlers, nil
	}

	pool := worker.NewPool(deps.Config.NotifyWorkers, deps.Config.NotifyQueueSize)
	notifier, err := notify.NewDiscordNotifier(notifyCfg, pool)
	if err != nil {
		handlers.stopMaintenance()
		handlers.Hub.Stop()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateNotifier, err)
	}
	pool.Start()
	notifier.Subscribe(deps.EventBus)
	handlers.NotifyPool = pool

	slog.Info(LogMsgNotifierInitialized,
		"workers", deps.Config.NotifyWorkers,
		"queue_size", deps.Config.NotifyQueueSize)

	return handlers, nil
}

func (h *EventHandlers) stopMaintenance() {
	if h.Scheduler != nil {
		h.Scheduler.Stop()
	}
	if h.MaintenancePool != nil {
		h.MaintenancePool.Stop()
	}
}
