package domain

// PaymentStatus is the upstream-reported lifecycle state of a payment record.
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusPending   PaymentStatus = "pending"
)

// Direction classifies committed money movement.
type Direction string

const (
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
)

// DonationMetadata is the donation-link marker decoded once at the API
// boundary from the upstream record's open-ended metadata bag.
type DonationMetadata struct {
	LinkID     string // pay-link identifier the payment arrived through
	Comment    string // donor comment, may be empty
	AmountMsat *int64 // donation-specific amount, nil when absent or non-numeric
}

// Payment is a raw upstream payment record. AmountMsat is signed: the sign
// encodes direction. CreatedAt is kept as the raw upstream string because its
// format is not guaranteed; normalization happens during classification.
type Payment struct {
	Identifier string
	AmountMsat int64
	Memo       string
	Status     PaymentStatus
	CreatedAt  string
	Donation   *DonationMetadata
}

// DonationDetail carries the donation attribution of a classified event.
type DonationDetail struct {
	AmountSats int64
	Comment    string // sanitized
}

// ClassifiedEvent is the normalized, sign- and unit-normalized form of one
// committed payment record. It exists only transiently; only its side effects
// are persisted.
type ClassifiedEvent struct {
	Identifier string
	WalletTag  string
	Direction  Direction
	AmountSats int64 // absolute value, truncated toward zero from msat
	Memo       string
	Time       EventTime
	Donation   *DonationDetail // non-nil when attributed to the donation link
}

// PendingPayment is an in-flight incoming record collected for display only.
// Pending records never enter the classification pipeline.
type PendingPayment struct {
	AmountSats int64
	Memo       string
}

// MsatToSats converts a milli-unit magnitude to whole display units by
// integer truncation of the absolute value. Fractional sub-unit remainders
// are discarded, not rounded.
func MsatToSats(msat int64) int64 {
	if msat < 0 {
		msat = -msat
	}
	return msat / 1000
}
