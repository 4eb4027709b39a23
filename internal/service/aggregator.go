package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"ln-sentinel/internal/core/domain"
	"ln-sentinel/internal/core/ports"
	"ln-sentinel/internal/observability"
)

// Aggregator drives the periodic schedules across all configured wallets and
// hands results to the publisher. Wallets are isolated: one wallet's failed
// tick never blocks another wallet's tick.
type Aggregator struct {
	poller    *Poller
	publisher ports.EventPublisher
	wallets   []domain.WalletDescriptor
	metrics   *observability.Metrics
	logger    zerolog.Logger

	pollInterval   time.Duration
	digestInterval time.Duration
}

// NewAggregator wires the scheduler. An interval of zero disables the
// corresponding schedule.
func NewAggregator(
	poller *Poller,
	publisher ports.EventPublisher,
	wallets []domain.WalletDescriptor,
	metrics *observability.Metrics,
	pollInterval, digestInterval time.Duration,
	logger zerolog.Logger,
) *Aggregator {
	return &Aggregator{
		poller:         poller,
		publisher:      publisher,
		wallets:        wallets,
		metrics:        metrics,
		logger:         logger,
		pollInterval:   pollInterval,
		digestInterval: digestInterval,
	}
}

// Run blocks until ctx is cancelled, firing the polling and digest schedules
// at their configured intervals. The first poll runs immediately so a fresh
// process reports state without waiting a full interval.
func (a *Aggregator) Run(ctx context.Context) {
	if a.pollInterval <= 0 && a.digestInterval <= 0 {
		a.logger.Warn().Msg("all schedules disabled, scheduler idle")
		<-ctx.Done()
		return
	}

	var pollC, digestC <-chan time.Time
	if a.pollInterval > 0 {
		ticker := time.NewTicker(a.pollInterval)
		defer ticker.Stop()
		pollC = ticker.C
		a.RunTick(ctx)
	}
	if a.digestInterval > 0 {
		ticker := time.NewTicker(a.digestInterval)
		defer ticker.Stop()
		digestC = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			a.logger.Info().Msg("scheduler stopped")
			return
		case <-pollC:
			a.RunTick(ctx)
		case <-digestC:
			a.RunDigest(ctx)
		}
	}
}

// RunTick polls every wallet once and publishes each wallet's result when it
// carries anything notifiable.
func (a *Aggregator) RunTick(ctx context.Context) {
	for _, wallet := range a.wallets {
		if ctx.Err() != nil {
			return
		}
		result, err := a.poller.Poll(ctx, wallet)
		if err != nil {
			a.logger.Error().Err(err).
				Str("wallet", wallet.Tag).
				Msg("polling tick failed")
			continue
		}
		if !result.HasPayments() && result.Balance == nil {
			continue
		}
		if err := a.publisher.PublishTick(ctx, result); err != nil {
			// Lost notification: the events are recorded as seen and
			// will not be redelivered.
			a.metrics.NotifyFailures.Inc()
			a.logger.Error().Err(err).
				Str("wallet", wallet.Tag).
				Msg("failed to publish tick result")
		}
	}
}

// RunDigest publishes one summary per wallet.
func (a *Aggregator) RunDigest(ctx context.Context) {
	for _, wallet := range a.wallets {
		if ctx.Err() != nil {
			return
		}
		summary, err := a.poller.Summarize(ctx, wallet)
		if err != nil {
			a.logger.Error().Err(err).
				Str("wallet", wallet.Tag).
				Msg("digest summary failed")
			continue
		}
		if err := a.publisher.PublishSummary(ctx, *summary); err != nil {
			a.metrics.NotifyFailures.Inc()
			a.logger.Error().Err(err).
				Str("wallet", wallet.Tag).
				Msg("failed to publish wallet summary")
		}
	}
}
