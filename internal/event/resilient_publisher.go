package event

import (
	"context"
	"sync"
	"time"

	"github.com/tamaverse/TamaPet_Go/internal/logger"
)

// ResilientPublisher wraps an Event Bus to add retry logic and dead-letter
// queuing. Callers are decoupled from retries: PublishWithRetry returns
// immediately and failed publishes are retried in the background with
// exponential backoff before landing in the dead-letter file.
type ResilientPublisher struct {
	inner      Bus
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter
	wg         sync.WaitGroup
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}
	return &ResilientPublisher{
		inner:      inner,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dlw,
	}, nil
}

// PublishWithRetry attempts to publish an event, retrying asynchronously on
// failure. The caller's context is not used for retries because the request
// may already be finished by then.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	if err := p.inner.Publish(ctx, event); err == nil {
		return
	} else {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
			"event_type", event.Type,
			"error", err,
			"max_retries", p.maxRetries)
	}

	p.wg.Add(1)
	go p.retryLoop(event)
}

func (p *ResilientPublisher) retryLoop(event Event) {
	defer p.wg.Done()
	ctx := context.Background()

	var lastErr error
	for attempt := 1; attempt <= p.maxRetries; attempt++ {
		time.Sleep(CalculateRetryDelay(p.retryDelay, attempt))

		if lastErr = p.inner.Publish(ctx, event); lastErr == nil {
			logger.Info(LogMsgEventRetrySucceeded,
				"event_type", event.Type,
				"attempt", attempt)
			return
		}

		logger.Warn("Event retry failed",
			"event_type", event.Type,
			"attempt", attempt,
			"error", lastErr)
	}

	logger.Warn(LogMsgEventRetryExhausted, "event_type", event.Type)
	if err := p.deadLetter.Write(event, p.maxRetries, lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "error", err)
	}
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown waits for in-flight retries to finish, then closes the
// dead-letter file.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
	}
	return p.deadLetter.Close()
}
