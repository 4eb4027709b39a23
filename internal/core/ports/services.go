package ports

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks

import (
	"context"
	"time"

	"ln-sentinel/internal/core/domain"
)

// WalletClient is the read-only upstream wallet API, keyed by a per-wallet
// credential. Implementations must carry a bounded timeout; this system
// never initiates a financial operation through it.
type WalletClient interface {
	// Balance returns the current wallet balance in milli-units.
	Balance(ctx context.Context, apiKey string) (int64, error)
	// Payments returns recent payment records, most recent first not guaranteed.
	Payments(ctx context.Context, apiKey string) ([]domain.Payment, error)
	// PayLink resolves a configured donation-link identifier for summary
	// enrichment. Never used to classify events.
	PayLink(ctx context.Context, apiKey, linkID string) (*domain.PayLink, error)
}

// Notifier delivers formatted text with optional interactive controls to the
// messaging channel. Failures are logged by callers and not retried.
type Notifier interface {
	Send(ctx context.Context, text string, controls []domain.Control) error
	SendTo(ctx context.Context, chatID int64, text string, controls []domain.Control) error
}

// VoteGuard prevents duplicate votes from the same caller. Returns true when
// the vote is new. A nil guard disables duplicate-vote protection.
type VoteGuard interface {
	CheckAndSet(ctx context.Context, voterToken, donationID string, ttl time.Duration) (bool, error)
}

// EventPublisher turns tick results and digests into outbound notifications.
// Publish failures mean the notification was lost for this tick; the
// underlying events are already recorded and are not redelivered.
type EventPublisher interface {
	PublishTick(ctx context.Context, result *domain.TickResult) error
	PublishSummary(ctx context.Context, summary domain.WalletSummary) error
}
