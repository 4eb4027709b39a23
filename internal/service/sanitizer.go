package service

import (
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"
)

// memoPlaceholder replaces empty or absent memos.
const memoPlaceholder = "No memo"

// Sanitizer masks configured forbidden words in memo text. Matching is
// case-insensitive and whole-word; each match is replaced with an equal-length
// asterisk run so message layout is preserved. Sanitizing already-sanitized
// text is a no-op because masked tokens no longer match any word.
//
// The word set is mutable at runtime. Growing it does not retroactively
// re-sanitize stored memos; that requires the explicit administrative pass.
type Sanitizer struct {
	mu      sync.RWMutex
	words   map[string]struct{}
	pattern *regexp.Regexp // nil when the set is empty
}

// NewSanitizer creates a sanitizer with an initial forbidden-word set.
func NewSanitizer(words []string) *Sanitizer {
	s := &Sanitizer{words: make(map[string]struct{})}
	s.AddWords(words...)
	return s
}

// AddWords extends the forbidden set. Returns the number of words that were
// actually new. Blank entries are ignored; matching stays case-insensitive so
// words are stored lowercased.
func (s *Sanitizer) AddWords(words ...string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := s.words[w]; ok {
			continue
		}
		s.words[w] = struct{}{}
		added++
	}
	if added > 0 {
		s.rebuildLocked()
	}
	return added
}

// Words returns the current forbidden set, sorted.
func (s *Sanitizer) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Sanitize masks forbidden words in text. Empty input normalizes to a fixed
// placeholder, never to the empty string.
func (s *Sanitizer) Sanitize(text string) string {
	if strings.TrimSpace(text) == "" {
		return memoPlaceholder
	}

	s.mu.RLock()
	pattern := s.pattern
	s.mu.RUnlock()

	if pattern == nil {
		return text
	}
	return pattern.ReplaceAllStringFunc(text, func(match string) string {
		// One asterisk per character, not per byte.
		return strings.Repeat("*", utf8.RuneCountInString(match))
	})
}

// rebuildLocked recompiles the match pattern. Callers must hold s.mu.
func (s *Sanitizer) rebuildLocked() {
	if len(s.words) == 0 {
		s.pattern = nil
		return
	}
	quoted := make([]string, 0, len(s.words))
	for w := range s.words {
		quoted = append(quoted, regexp.QuoteMeta(w))
	}
	sort.Strings(quoted)
	s.pattern = regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}
