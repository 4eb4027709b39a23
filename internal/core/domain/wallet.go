package domain

// WalletDescriptor identifies one monitored wallet. Created from
// configuration at startup; immutable for the process lifetime. Tag scopes
// this wallet's identifiers and balance snapshot apart from other wallets'.
type WalletDescriptor struct {
	Tag    string
	Name   string
	APIKey string
}

// ScopedID namespaces an upstream payment identifier under this wallet's tag
// so the same upstream hash in two wallets is tracked independently.
func (w WalletDescriptor) ScopedID(identifier string) string {
	return w.Tag + "_" + identifier
}

// BalanceUpdate reports a balance observation that crossed the configured
// threshold, or the first observation of a wallet (Initial set, no threshold
// comparison performed).
type BalanceUpdate struct {
	WalletTag    string
	PreviousSats int64
	CurrentSats  int64
	DeltaSats    int64 // CurrentSats - PreviousSats; zero when Initial
	Initial      bool
}

// TickResult collects everything one wallet produced in one polling tick.
type TickResult struct {
	Wallet    WalletDescriptor
	Incoming  []ClassifiedEvent
	Outgoing  []ClassifiedEvent
	Pending   []PendingPayment
	Donations []Donation
	Balance   *BalanceUpdate // nil when no balance event was emitted
}

// HasPayments reports whether the tick produced any transaction activity
// worth notifying.
func (r *TickResult) HasPayments() bool {
	return len(r.Incoming) > 0 || len(r.Outgoing) > 0 || len(r.Pending) > 0
}

// WalletSummary aggregates completed payment totals for the scheduled digest.
type WalletSummary struct {
	Wallet        WalletDescriptor
	BalanceSats   int64
	IncomingCount int
	IncomingSats  int64
	OutgoingCount int
	OutgoingSats  int64
}

// Control is one interactive button attached to an outbound notification.
// Exactly one of URL or CallbackData is set.
type Control struct {
	Label        string
	URL          string
	CallbackData string
}
