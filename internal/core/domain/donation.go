package domain

import "time"

// VoteKind is a donation vote direction.
type VoteKind string

const (
	VoteLike    VoteKind = "like"
	VoteDislike VoteKind = "dislike"
)

// ParseVoteKind validates a raw vote string.
func ParseVoteKind(raw string) (VoteKind, bool) {
	switch VoteKind(raw) {
	case VoteLike:
		return VoteLike, true
	case VoteDislike:
		return VoteDislike, true
	}
	return "", false
}

// Donation is one attributed donation. Created when a classified event is
// flagged as a donation; mutated only by vote operations; never deleted.
type Donation struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	Memo     string    `json:"memo"` // sanitized
	Amount   int64     `json:"amount"`
	Likes    int       `json:"likes"`
	Dislikes int       `json:"dislikes"`
}

// PayLink is the resolved donation-link information, used only to enrich
// donation summaries, never to classify events.
type PayLink struct {
	ID          string
	Description string
	Username    string
	LNURL       string
}

// LightningAddress builds the payable address from the pay-link username and
// the upstream host.
func (p PayLink) LightningAddress(domain string) string {
	user := p.Username
	if user == "" {
		user = "Unknown"
	}
	return user + "@" + domain
}
