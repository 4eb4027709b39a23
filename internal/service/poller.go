package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ln-sentinel/internal/core/domain"
	"ln-sentinel/internal/core/ports"
	"ln-sentinel/internal/observability"
)

// Poller runs one wallet's polling tick: fetch balance and payments, drop
// already-seen records, classify the rest, append attributed donations, and
// compute the balance delta. It never calls a money-moving endpoint.
type Poller struct {
	client    ports.WalletClient
	seen      ports.SeenLedger
	balances  ports.BalanceStore
	donations ports.DonationStore

	classifier *Classifier
	sanitizer  *Sanitizer
	metrics    *observability.Metrics
	logger     zerolog.Logger

	fetchCount    int
	thresholdSats int64

	now func() time.Time
}

// NewPoller wires a poller. fetchCount bounds how many of the newest records
// each tick inspects; thresholdSats gates balance-change notifications.
func NewPoller(
	client ports.WalletClient,
	seen ports.SeenLedger,
	balances ports.BalanceStore,
	donations ports.DonationStore,
	classifier *Classifier,
	sanitizer *Sanitizer,
	metrics *observability.Metrics,
	fetchCount int,
	thresholdSats int64,
	logger zerolog.Logger,
) *Poller {
	return &Poller{
		client:        client,
		seen:          seen,
		balances:      balances,
		donations:     donations,
		classifier:    classifier,
		sanitizer:     sanitizer,
		metrics:       metrics,
		logger:        logger,
		fetchCount:    fetchCount,
		thresholdSats: thresholdSats,
		now:           time.Now,
	}
}

// Poll executes one tick for wallet. A failed upstream fetch aborts the whole
// tick with no state mutated; the next tick retries from the same position
// because nothing was recorded as seen. Snapshot store failures never abort
// the tick: by then payments are already recorded as seen, so the events must
// go out this tick or not at all.
func (p *Poller) Poll(ctx context.Context, wallet domain.WalletDescriptor) (*domain.TickResult, error) {
	balanceMsat, err := p.client.Balance(ctx, wallet.APIKey)
	if err != nil {
		p.metrics.TickFailures.WithLabelValues(wallet.Tag).Inc()
		return nil, fmt.Errorf("fetch balance: %w", err)
	}
	payments, err := p.client.Payments(ctx, wallet.APIKey)
	if err != nil {
		p.metrics.TickFailures.WithLabelValues(wallet.Tag).Inc()
		return nil, fmt.Errorf("fetch payments: %w", err)
	}

	result := &domain.TickResult{Wallet: wallet}
	now := p.now()

	for _, payment := range p.latest(payments, now) {
		p.processPayment(wallet, payment, now, result)
	}

	result.Balance = p.updateBalance(wallet, domain.MsatToSats(balanceMsat))

	p.metrics.TicksTotal.WithLabelValues(wallet.Tag).Inc()
	return result, nil
}

// latest sorts records newest first by normalized timestamp and keeps the
// configured window. Records outside the window are ignored for this tick;
// they are picked up later only if they stay within a future window.
func (p *Poller) latest(payments []domain.Payment, now time.Time) []domain.Payment {
	sorted := make([]domain.Payment, len(payments))
	copy(sorted, payments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return domain.ParseEventTime(sorted[i].CreatedAt, now).Time.
			After(domain.ParseEventTime(sorted[j].CreatedAt, now).Time)
	})
	if p.fetchCount > 0 && len(sorted) > p.fetchCount {
		sorted = sorted[:p.fetchCount]
	}
	return sorted
}

func (p *Poller) processPayment(wallet domain.WalletDescriptor, payment domain.Payment, now time.Time, result *domain.TickResult) {
	if payment.Identifier == "" {
		p.metrics.EventsSkipped.WithLabelValues(wallet.Tag, "missing_identifier").Inc()
		p.logger.Warn().
			Str("wallet", wallet.Tag).
			Str("memo", payment.Memo).
			Msg("payment record without identifier dropped")
		return
	}

	scoped := wallet.ScopedID(payment.Identifier)
	if p.seen.Has(scoped) {
		return
	}

	if payment.Status == domain.PaymentStatusPending {
		// Pending records are displayed once and marked as seen; the
		// upstream keeps reporting them until they settle or expire.
		if payment.AmountMsat > 0 {
			result.Pending = append(result.Pending, domain.PendingPayment{
				AmountSats: domain.MsatToSats(payment.AmountMsat),
				Memo:       p.sanitizer.Sanitize(payment.Memo),
			})
		}
		p.record(wallet, scoped)
		return
	}

	event := p.classifier.Classify(wallet, payment, now)
	if event == nil {
		p.metrics.EventsSkipped.WithLabelValues(wallet.Tag, "zero_amount").Inc()
		p.record(wallet, scoped)
		return
	}

	switch event.Direction {
	case domain.DirectionIncoming:
		result.Incoming = append(result.Incoming, *event)
	case domain.DirectionOutgoing:
		result.Outgoing = append(result.Outgoing, *event)
	}
	p.metrics.EventsClassified.WithLabelValues(wallet.Tag, string(event.Direction)).Inc()

	if event.Donation != nil {
		donation := domain.Donation{
			ID:     uuid.NewString(),
			Date:   event.Time.Time,
			Memo:   event.Donation.Comment,
			Amount: event.Donation.AmountSats,
		}
		if err := p.donations.Append(donation); err != nil {
			p.metrics.StoreErrors.WithLabelValues("donations").Inc()
			p.logger.Error().Err(err).
				Str("wallet", wallet.Tag).
				Int64("amount_sats", donation.Amount).
				Msg("failed to persist donation")
		} else {
			p.metrics.DonationsRecorded.Inc()
			result.Donations = append(result.Donations, donation)
			p.logger.Info().
				Int64("amount_sats", donation.Amount).
				Str("memo", donation.Memo).
				Msg("new donation recorded")
		}
	}

	p.record(wallet, scoped)
}

// record marks a wallet-scoped identifier as seen. A persistence failure is
// logged but does not undo the in-memory mark; re-notifying on restart is
// preferred over notifying twice within one process lifetime.
func (p *Poller) record(wallet domain.WalletDescriptor, scoped string) {
	if err := p.seen.Record(scoped); err != nil {
		p.metrics.StoreErrors.WithLabelValues("seen").Inc()
		p.logger.Error().Err(err).
			Str("wallet", wallet.Tag).
			Str("identifier", scoped).
			Msg("failed to persist seen identifier")
	}
}

// updateBalance advances the balance snapshot and decides whether the
// observation is notifiable. The snapshot always advances after a successful
// fetch, including when the change stays below the threshold, so a slow drift
// is never reported as one large jump. Store failures are logged and counted;
// a failed load skips only the comparison, never the tick.
func (p *Poller) updateBalance(wallet domain.WalletDescriptor, currentSats int64) *domain.BalanceUpdate {
	previous, found, loadErr := p.balances.Load(wallet.Tag)
	if loadErr != nil {
		p.metrics.StoreErrors.WithLabelValues("balance").Inc()
		p.logger.Error().Err(loadErr).
			Str("wallet", wallet.Tag).
			Msg("failed to load balance snapshot")
	}

	if err := p.balances.Save(wallet.Tag, currentSats); err != nil {
		p.metrics.StoreErrors.WithLabelValues("balance").Inc()
		p.logger.Error().Err(err).
			Str("wallet", wallet.Tag).
			Int64("balance_sats", currentSats).
			Msg("failed to persist balance snapshot")
	}

	if loadErr != nil {
		// No trusted previous value this tick; comparison resumes next
		// tick from the snapshot just saved.
		return nil
	}

	if !found {
		p.metrics.BalanceEvents.WithLabelValues(wallet.Tag, "initial").Inc()
		p.logger.Info().
			Str("wallet", wallet.Tag).
			Int64("balance_sats", currentSats).
			Msg("initial balance recorded")
		return &domain.BalanceUpdate{
			WalletTag:   wallet.Tag,
			CurrentSats: currentSats,
			Initial:     true,
		}
	}

	delta := currentSats - previous
	if delta == 0 {
		return nil
	}
	abs := delta
	if abs < 0 {
		abs = -abs
	}
	if abs < p.thresholdSats {
		p.logger.Debug().
			Str("wallet", wallet.Tag).
			Int64("delta_sats", delta).
			Msg("balance change below threshold")
		return nil
	}

	p.metrics.BalanceEvents.WithLabelValues(wallet.Tag, "threshold").Inc()
	return &domain.BalanceUpdate{
		WalletTag:    wallet.Tag,
		PreviousSats: previous,
		CurrentSats:  currentSats,
		DeltaSats:    delta,
		Initial:      false,
	}
}

// Recent builds a read-only view of the newest records for on-demand display.
// Unlike Poll it ignores the seen ledger and mutates nothing, so asking for
// the latest transactions twice shows the same list twice.
func (p *Poller) Recent(ctx context.Context, wallet domain.WalletDescriptor) (*domain.TickResult, error) {
	payments, err := p.client.Payments(ctx, wallet.APIKey)
	if err != nil {
		return nil, fmt.Errorf("fetch payments: %w", err)
	}

	result := &domain.TickResult{Wallet: wallet}
	now := p.now()
	for _, payment := range p.latest(payments, now) {
		if payment.Status == domain.PaymentStatusPending {
			if payment.AmountMsat > 0 {
				result.Pending = append(result.Pending, domain.PendingPayment{
					AmountSats: domain.MsatToSats(payment.AmountMsat),
					Memo:       p.sanitizer.Sanitize(payment.Memo),
				})
			}
			continue
		}
		event := p.classifier.Classify(wallet, payment, now)
		if event == nil {
			continue
		}
		switch event.Direction {
		case domain.DirectionIncoming:
			result.Incoming = append(result.Incoming, *event)
		case domain.DirectionOutgoing:
			result.Outgoing = append(result.Outgoing, *event)
		}
	}
	return result, nil
}

// Summarize aggregates completed payment totals for the scheduled digest.
// Pending records are excluded from both counts and sums.
func (p *Poller) Summarize(ctx context.Context, wallet domain.WalletDescriptor) (*domain.WalletSummary, error) {
	balanceMsat, err := p.client.Balance(ctx, wallet.APIKey)
	if err != nil {
		return nil, fmt.Errorf("fetch balance: %w", err)
	}
	payments, err := p.client.Payments(ctx, wallet.APIKey)
	if err != nil {
		return nil, fmt.Errorf("fetch payments: %w", err)
	}

	summary := &domain.WalletSummary{
		Wallet:      wallet,
		BalanceSats: domain.MsatToSats(balanceMsat),
	}
	for _, payment := range payments {
		if payment.Status == domain.PaymentStatusPending {
			continue
		}
		sats := domain.MsatToSats(payment.AmountMsat)
		switch {
		case payment.AmountMsat > 0:
			summary.IncomingCount++
			summary.IncomingSats += sats
		case payment.AmountMsat < 0:
			summary.OutgoingCount++
			summary.OutgoingSats += sats
		}
	}
	return summary, nil
}
