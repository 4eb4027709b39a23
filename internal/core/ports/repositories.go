package ports

//go:generate mockgen -source=repositories.go -destination=mocks/repositories_mock.go -package=mocks

import (
	"time"

	"ln-sentinel/internal/core/domain"
)

// SeenLedger is the append-only set of already-seen, wallet-scoped event
// identifiers. Record must be durable before the corresponding notification
// is considered sent. There is no deletion operation.
type SeenLedger interface {
	Has(id string) bool
	Record(id string) error
	Count() int
}

// BalanceStore persists one balance scalar per wallet tag.
// Load returning found=false signals the first observation of a wallet; the
// caller must not compute a delta against an absent baseline.
type BalanceStore interface {
	Load(walletTag string) (sats int64, found bool, err error)
	Save(walletTag string, sats int64) error
}

// DonationStore accumulates attributed donations and the running total.
// The total must always equal the sum of the stored donation amounts,
// including across process restarts.
type DonationStore interface {
	Append(d domain.Donation) error
	Vote(donationID string, kind domain.VoteKind) (*domain.Donation, error)
	Snapshot() (total int64, donations []domain.Donation)
	LastChanged() time.Time
	// Resanitize rewrites every stored memo through clean and persists the
	// result. Invoked only by the explicit administrative pass.
	Resanitize(clean func(string) string) error
}
