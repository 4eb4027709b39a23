package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// VoteGuard implements ports.VoteGuard using Redis SET NX. Duplicate-vote
// protection is a collaborator of the donation ledger, not part of it: the
// ledger itself accepts every vote.
type VoteGuard struct {
	client *goredis.Client
	prefix string
}

// NewVoteGuard creates a Redis-backed vote guard.
func NewVoteGuard(client *goredis.Client) *VoteGuard {
	return &VoteGuard{
		client: client,
		prefix: "vote:",
	}
}

// CheckAndSet atomically checks whether this voter already voted on the
// donation, marking the vote if not. Returns true when the vote is new.
func (g *VoteGuard) CheckAndSet(ctx context.Context, voterToken, donationID string, ttl time.Duration) (bool, error) {
	key := g.prefix + voterToken + ":" + donationID
	result, err := g.client.SetArgs(ctx, key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists — this voter already voted.
			return false, nil
		}
		return false, fmt.Errorf("redis vote check: %w", err)
	}
	return result == "OK", nil
}
