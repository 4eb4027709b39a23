package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"ln-sentinel/internal/core/domain"
)

// ledgerDocument is the persisted donation ledger layout: total plus list in
// one structured document, written atomically per mutation.
type ledgerDocument struct {
	TotalDonations int64             `json:"total_donations"`
	Donations      []domain.Donation `json:"donations"`
}

// DonationLedger implements ports.DonationStore on a single JSON document.
// Every mutation rewrites the full document via temp-file plus atomic rename
// so a crash can never leave total and list inconsistent.
type DonationLedger struct {
	mu          sync.Mutex
	path        string
	total       int64
	donations   []domain.Donation
	lastChanged time.Time
}

// NewDonationLedger opens (or initializes) the ledger document. The running
// total is recomputed from the stored list at load so the total invariant
// holds even if the document was hand-edited.
func NewDonationLedger(path string) (*DonationLedger, error) {
	l := &DonationLedger{path: path, lastChanged: time.Now().UTC()}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, fmt.Errorf("reading donation ledger: %w", err)
	}

	var doc ledgerDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding donation ledger: %w", err)
	}

	l.donations = doc.Donations
	for _, d := range l.donations {
		l.total += d.Amount
	}
	return l, nil
}

// Append adds a donation and its amount to the running total, then persists.
// The in-memory state advances even when persistence fails so the current
// tick completes; the error is still reported to the caller.
func (l *DonationLedger) Append(d domain.Donation) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.donations = append(l.donations, d)
	l.total += d.Amount
	l.lastChanged = time.Now().UTC()
	return l.persistLocked()
}

// Vote increments the like or dislike counter of one donation.
// Returns nil, nil when the donation does not exist.
func (l *DonationLedger) Vote(donationID string, kind domain.VoteKind) (*domain.Donation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.donations {
		if l.donations[i].ID != donationID {
			continue
		}
		switch kind {
		case domain.VoteLike:
			l.donations[i].Likes++
		case domain.VoteDislike:
			l.donations[i].Dislikes++
		default:
			return nil, fmt.Errorf("unknown vote kind %q", kind)
		}
		l.lastChanged = time.Now().UTC()
		if err := l.persistLocked(); err != nil {
			return nil, err
		}
		updated := l.donations[i]
		return &updated, nil
	}
	return nil, nil
}

// Snapshot returns the running total and a copy of all donations.
func (l *DonationLedger) Snapshot() (int64, []domain.Donation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	list := make([]domain.Donation, len(l.donations))
	copy(list, l.donations)
	return l.total, list
}

// LastChanged returns the time of the most recent mutation.
func (l *DonationLedger) LastChanged() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastChanged
}

// Resanitize rewrites every stored memo through clean and persists once.
func (l *DonationLedger) Resanitize(clean func(string) string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	changed := false
	for i := range l.donations {
		if cleaned := clean(l.donations[i].Memo); cleaned != l.donations[i].Memo {
			l.donations[i].Memo = cleaned
			changed = true
		}
	}
	if !changed {
		return nil
	}
	l.lastChanged = time.Now().UTC()
	return l.persistLocked()
}

// persistLocked writes the full document via temp file + rename.
// Callers must hold l.mu.
func (l *DonationLedger) persistLocked() error {
	doc := ledgerDocument{
		TotalDonations: l.total,
		Donations:      l.donations,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding donation ledger: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(l.path), ".donations-*.tmp")
	if err != nil {
		return fmt.Errorf("creating ledger temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing ledger temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing ledger temp file: %w", err)
	}
	if err := os.Rename(tmpName, l.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing donation ledger: %w", err)
	}
	return nil
}
