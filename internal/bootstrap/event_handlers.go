package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/tamaverse/TamaPet_Go/internal/event"
	"github.com/tamaverse/TamaPet_Go/internal/metrics"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
}

// RegisterEventHandlers sets up all event subscribers, currently the
// metrics collector that turns domain events into Prometheus counters.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	return nil
}
