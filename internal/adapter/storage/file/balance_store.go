package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// BalanceStore implements ports.BalanceStore with one scalar file per wallet
// tag. Corrupt or unparseable content is treated as zero rather than failing
// the poll cycle.
type BalanceStore struct {
	mu  sync.Mutex
	dir string
}

// NewBalanceStore creates a store writing snapshot files under dir.
func NewBalanceStore(dir string) *BalanceStore {
	return &BalanceStore{dir: dir}
}

func (s *BalanceStore) pathFor(walletTag string) string {
	return filepath.Join(s.dir, walletTag+"-balance.txt")
}

// Load returns the last persisted balance for the wallet. found=false means
// the wallet has never been observed.
func (s *BalanceStore) Load(walletTag string) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.pathFor(walletTag))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("reading balance snapshot: %w", err)
	}

	content := strings.TrimSpace(string(data))
	if content == "" {
		return 0, true, nil
	}
	sats, err := strconv.ParseInt(content, 10, 64)
	if err != nil {
		// Corrupt content loads as zero so the poll cycle survives.
		return 0, true, nil
	}
	return sats, true, nil
}

// Save overwrites the wallet's snapshot with the given balance.
func (s *BalanceStore) Save(walletTag string, sats int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.pathFor(walletTag), []byte(strconv.FormatInt(sats, 10)), 0o600); err != nil {
		return fmt.Errorf("writing balance snapshot: %w", err)
	}
	return nil
}
