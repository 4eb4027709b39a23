package service

import (
	"context"
	"sync"
	"time"

	"ln-sentinel/internal/core/domain"
)

// fakeWalletClient serves canned upstream responses. The optional per-key
// hooks let a test fail one wallet while another succeeds.
type fakeWalletClient struct {
	balanceMsat int64
	balanceErr  error
	payments    []domain.Payment
	paymentsErr error
	payLink     *domain.PayLink
	payLinkErr  error

	balanceFn  func(apiKey string) (int64, error)
	paymentsFn func(apiKey string) ([]domain.Payment, error)
}

func (f *fakeWalletClient) Balance(_ context.Context, apiKey string) (int64, error) {
	if f.balanceFn != nil {
		return f.balanceFn(apiKey)
	}
	return f.balanceMsat, f.balanceErr
}

func (f *fakeWalletClient) Payments(_ context.Context, apiKey string) ([]domain.Payment, error) {
	if f.paymentsFn != nil {
		return f.paymentsFn(apiKey)
	}
	return f.payments, f.paymentsErr
}

func (f *fakeWalletClient) PayLink(context.Context, string, string) (*domain.PayLink, error) {
	return f.payLink, f.payLinkErr
}

// memSeen is an in-memory seen ledger.
type memSeen struct {
	mu        sync.Mutex
	ids       map[string]struct{}
	recordErr error
}

func newMemSeen() *memSeen {
	return &memSeen{ids: make(map[string]struct{})}
}

func (m *memSeen) Has(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.ids[id]
	return ok
}

func (m *memSeen) Record(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ids[id] = struct{}{}
	return m.recordErr
}

func (m *memSeen) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ids)
}

// memBalances is an in-memory balance store.
type memBalances struct {
	mu      sync.Mutex
	sats    map[string]int64
	loadErr error
	saveErr error
}

func newMemBalances() *memBalances {
	return &memBalances{sats: make(map[string]int64)}
}

func (m *memBalances) Load(tag string) (int64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return 0, false, m.loadErr
	}
	v, ok := m.sats[tag]
	return v, ok, nil
}

func (m *memBalances) Save(tag string, sats int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.sats[tag] = sats
	return nil
}

// memDonations is an in-memory donation store.
type memDonations struct {
	mu        sync.Mutex
	list      []domain.Donation
	appendErr error
	changed   time.Time
}

func newMemDonations() *memDonations {
	return &memDonations{}
}

func (m *memDonations) Append(d domain.Donation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.appendErr != nil {
		return m.appendErr
	}
	m.list = append(m.list, d)
	m.changed = time.Now()
	return nil
}

func (m *memDonations) Vote(donationID string, kind domain.VoteKind) (*domain.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.list {
		if m.list[i].ID != donationID {
			continue
		}
		if kind == domain.VoteLike {
			m.list[i].Likes++
		} else {
			m.list[i].Dislikes++
		}
		d := m.list[i]
		return &d, nil
	}
	return nil, nil
}

func (m *memDonations) Snapshot() (int64, []domain.Donation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total int64
	out := make([]domain.Donation, len(m.list))
	copy(out, m.list)
	for _, d := range m.list {
		total += d.Amount
	}
	return total, out
}

func (m *memDonations) LastChanged() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.changed
}

func (m *memDonations) Resanitize(clean func(string) string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.list {
		m.list[i].Memo = clean(m.list[i].Memo)
	}
	return nil
}

// fakePublisher captures published ticks and summaries.
type fakePublisher struct {
	mu         sync.Mutex
	ticks      []*domain.TickResult
	summaries  []domain.WalletSummary
	publishErr error
}

func (f *fakePublisher) PublishTick(_ context.Context, result *domain.TickResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.publishErr != nil {
		return f.publishErr
	}
	f.ticks = append(f.ticks, result)
	return nil
}

func (f *fakePublisher) PublishSummary(_ context.Context, summary domain.WalletSummary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.publishErr != nil {
		return f.publishErr
	}
	f.summaries = append(f.summaries, summary)
	return nil
}

func (f *fakePublisher) tickCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.ticks)
}

func (f *fakePublisher) summaryCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.summaries)
}
