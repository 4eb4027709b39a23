package file

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"
)

// SeenLedger implements ports.SeenLedger on an append-only newline-delimited
// file of wallet-scoped identifiers. Startup reconstructs the in-memory set
// by reading the file front-to-back. Writers hold the lock for the full
// read-modify-append sequence; on append failure the in-memory set still
// advances, trading a possible redelivery after restart for forward progress.
type SeenLedger struct {
	mu   sync.RWMutex
	path string
	seen map[string]struct{}
}

// NewSeenLedger opens (or creates) the ledger file and loads all identifiers.
func NewSeenLedger(path string) (*SeenLedger, error) {
	l := &SeenLedger{
		path: path,
		seen: make(map[string]struct{}),
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, fmt.Errorf("opening seen ledger: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if id := strings.TrimSpace(scanner.Text()); id != "" {
			l.seen[id] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading seen ledger: %w", err)
	}

	return l, nil
}

// Has reports whether the identifier was already handled.
func (l *SeenLedger) Has(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.seen[id]
	return ok
}

// Record marks the identifier as handled and appends it to the durable file.
// Recording an already-known identifier is a no-op.
func (l *SeenLedger) Record(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.seen[id]; ok {
		return nil
	}
	l.seen[id] = struct{}{}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening seen ledger for append: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(id + "\n"); err != nil {
		return fmt.Errorf("appending to seen ledger: %w", err)
	}
	return nil
}

// Count returns the number of recorded identifiers.
func (l *SeenLedger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.seen)
}
