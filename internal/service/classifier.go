package service

import (
	"time"

	"github.com/rs/zerolog"

	"ln-sentinel/internal/core/domain"
)

// Classifier normalizes raw upstream payment records into committed events.
// It drops records that carry no identifier, records still pending, and
// records whose raw amount is exactly zero; everything that survives gets a
// direction, a whole-unit amount, a sanitized memo, a normalized timestamp
// and, when the record came through the configured donation link, a donation
// attribution. Sub-unit amounts classify and display as zero.
type Classifier struct {
	sanitizer      *Sanitizer
	donationLinkID string
	logger         zerolog.Logger
}

// NewClassifier creates a classifier. donationLinkID may be empty, in which
// case no event is ever attributed as a donation.
func NewClassifier(sanitizer *Sanitizer, donationLinkID string, logger zerolog.Logger) *Classifier {
	return &Classifier{
		sanitizer:      sanitizer,
		donationLinkID: donationLinkID,
		logger:         logger,
	}
}

// Classify turns one raw record into a committed event. It returns nil when
// the record must not produce an event: missing identifier, pending status,
// or a raw amount of exactly zero. Pending records are surfaced separately by
// the poller; they never reach this path as events.
func (c *Classifier) Classify(wallet domain.WalletDescriptor, p domain.Payment, now time.Time) *domain.ClassifiedEvent {
	if p.Identifier == "" {
		c.logger.Warn().
			Str("wallet", wallet.Tag).
			Str("memo", p.Memo).
			Msg("payment record without identifier, skipping")
		return nil
	}
	if p.Status == domain.PaymentStatusPending {
		return nil
	}

	if p.AmountMsat == 0 {
		return nil
	}
	// Truncation happens after the zero check; a sub-unit record still
	// classifies and shows a zero amount.
	amountSats := domain.MsatToSats(p.AmountMsat)

	direction := domain.DirectionIncoming
	if p.AmountMsat < 0 {
		direction = domain.DirectionOutgoing
	}

	event := &domain.ClassifiedEvent{
		Identifier: p.Identifier,
		WalletTag:  wallet.Tag,
		Direction:  direction,
		AmountSats: amountSats,
		Memo:       c.sanitizer.Sanitize(p.Memo),
		Time:       domain.ParseEventTime(p.CreatedAt, now),
	}

	if detail := c.attributeDonation(p, amountSats); detail != nil && direction == domain.DirectionIncoming {
		event.Donation = detail
	}
	return event
}

// attributeDonation matches the record's decoded donation metadata against
// the configured donation link. The donation amount prefers the link-level
// amount over the payment amount when the metadata carries one.
func (c *Classifier) attributeDonation(p domain.Payment, eventSats int64) *domain.DonationDetail {
	if c.donationLinkID == "" || p.Donation == nil {
		return nil
	}
	if p.Donation.LinkID != c.donationLinkID {
		return nil
	}

	amount := eventSats
	if p.Donation.AmountMsat != nil {
		amount = domain.MsatToSats(*p.Donation.AmountMsat)
	}

	comment := p.Donation.Comment
	if comment == "" {
		comment = p.Memo
	}
	return &domain.DonationDetail{
		AmountSats: amount,
		Comment:    c.sanitizer.Sanitize(comment),
	}
}
