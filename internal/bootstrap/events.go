package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spinworks/SlotEngine_Go/internal/config"
	"github.com/spinworks/SlotEngine_Go/internal/event"
	"github.com/spinworks/SlotEngine_Go/internal/logger"
	"github.com/spinworks/SlotEngine_Go/internal/metrics"
)

// InitializeEventSystem creates the event bus, the resilient publisher with
// its dead-letter writer, and registers the metrics collector.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	if err := os.MkdirAll(filepath.Dir(cfg.DeadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
	}

	deadLetter, err := event.NewDeadLetterWriter(cfg.DeadLetterPath)
	if err != nil {
		return nil, nil, err
	}

	publisher := event.NewResilientPublisher(eventBus, event.ResilientConfig{
		MaxRetries: cfg.EventMaxRetries,
		RetryDelay: cfg.EventRetryDelay,
		DeadLetter: deadLetter,
	})

	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(eventBus); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	logger.Info(LogMsgMetricsCollectorRegistered)

	logger.Info(LogMsgEventSystemInitialized,
		"max_retries", cfg.EventMaxRetries,
		"retry_delay", cfg.EventRetryDelay,
		"deadletter_path", cfg.DeadLetterPath)

	return eventBus, publisher, nil
}
