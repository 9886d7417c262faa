package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"bookit/internal/pkg/config"
	"bookit/internal/usecase/shared"
)

// Relay drains the booking_events outbox. Delivery is at-least-once:
// an event published just before a failed commit is sent again on the next tick.
type Relay struct {
	uow         shared.UnitOfWork
	publisher   Publisher
	logger      *slog.Logger
	interval    time.Duration
	batchSize   int32
	maxAttempts int32

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRelay(uow shared.UnitOfWork, publisher Publisher, cfg config.Config, logger *slog.Logger) *Relay {
	return &Relay{
		uow:         uow,
		publisher:   publisher,
		logger:      logger,
		interval:    cfg.Events.PollInterval,
		batchSize:   cfg.Events.BatchSize,
		maxAttempts: cfg.Events.MaxAttempts,
	}
}

type DrainResult struct {
	Published int
	Failed    int
}

// RunOnce claims one batch, publishes it and records each outcome in the same transaction.
func (r *Relay) RunOnce(ctx context.Context) (DrainResult, error) {
	var result DrainResult

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = DrainResult{}

		pending, err := tx.Events().ClaimQueued(ctx, tx.DB(), r.batchSize)
		if err != nil {
			return err
		}

		for _, evt := range pending {
			if pubErr := r.publisher.Publish(ctx, evt); pubErr != nil {
				r.logger.WarnContext(ctx, "failed to publish booking event",
					"event_id", evt.ID,
					"attempt", evt.Attempts+1,
					"error", pubErr.Error())
				if err := tx.Events().MarkFailed(ctx, tx.DB(), evt.ID, pubErr.Error(), r.maxAttempts); err != nil {
					return err
				}
				result.Failed++
				continue
			}
			if err := tx.Events().MarkPublished(ctx, tx.DB(), evt.ID); err != nil {
				return err
			}
			result.Published++
		}
		return nil
	})
	if err != nil {
		return DrainResult{}, err
	}
	return result, nil
}

func (r *Relay) Start() {
	if r.interval <= 0 {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				res, err := r.RunOnce(ctx)
				if err != nil {
					if ctx.Err() == nil {
						r.logger.Error("outbox relay tick failed", "error", err.Error())
					}
					continue
				}
				if res.Published > 0 || res.Failed > 0 {
					r.logger.Debug("outbox relay tick", "published", res.Published, "failed", res.Failed)
				}
			}
		}
	}()
}

func (r *Relay) Stop(ctx context.Context) error {
	if r.cancel != nil {
		r.cancel()
	}

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return r.publisher.Close()
}
