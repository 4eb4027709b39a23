package file

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ln-sentinel/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDonation(amount int64, memo string) domain.Donation {
	return domain.Donation{
		ID:     uuid.New().String(),
		Date:   time.Now().UTC(),
		Memo:   memo,
		Amount: amount,
	}
}

func TestDonationLedger_AppendMaintainsTotal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "donations.json")
	l, err := NewDonationLedger(path)
	require.NoError(t, err)

	require.NoError(t, l.Append(newDonation(21, "thanks")))
	require.NoError(t, l.Append(newDonation(1000, "keep going")))

	total, donations := l.Snapshot()
	assert.Equal(t, int64(1021), total)
	require.Len(t, donations, 2)

	var sum int64
	for _, d := range donations {
		sum += d.Amount
	}
	assert.Equal(t, total, sum, "total must equal the sum of donation amounts")
}

func TestDonationLedger_TotalSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "donations.json")

	l, err := NewDonationLedger(path)
	require.NoError(t, err)
	require.NoError(t, l.Append(newDonation(500, "a")))
	require.NoError(t, l.Append(newDonation(250, "b")))

	reopened, err := NewDonationLedger(path)
	require.NoError(t, err)

	total, donations := reopened.Snapshot()
	assert.Equal(t, int64(750), total)
	assert.Len(t, donations, 2)
}

func TestDonationLedger_TotalRecomputedFromList(t *testing.T) {
	// A hand-edited document with a drifted total must load with the total
	// recomputed from the list.
	path := filepath.Join(t.TempDir(), "donations.json")
	doc := `{"total_donations": 9999, "donations": [{"id": "d1", "memo": "x", "amount": 10}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	l, err := NewDonationLedger(path)
	require.NoError(t, err)

	total, _ := l.Snapshot()
	assert.Equal(t, int64(10), total)
}

func TestDonationLedger_Vote(t *testing.T) {
	path := filepath.Join(t.TempDir(), "donations.json")
	l, err := NewDonationLedger(path)
	require.NoError(t, err)

	d := newDonation(21, "hello")
	require.NoError(t, l.Append(d))

	updated, err := l.Vote(d.ID, domain.VoteLike)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 1, updated.Likes)
	assert.Equal(t, 0, updated.Dislikes)

	updated, err = l.Vote(d.ID, domain.VoteDislike)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 1, updated.Likes)
	assert.Equal(t, 1, updated.Dislikes)
}

func TestDonationLedger_VoteNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "donations.json")
	l, err := NewDonationLedger(path)
	require.NoError(t, err)

	updated, err := l.Vote("missing", domain.VoteLike)
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDonationLedger_VotesPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "donations.json")
	l, err := NewDonationLedger(path)
	require.NoError(t, err)

	d := newDonation(21, "hello")
	require.NoError(t, l.Append(d))
	_, err = l.Vote(d.ID, domain.VoteLike)
	require.NoError(t, err)

	reopened, err := NewDonationLedger(path)
	require.NoError(t, err)
	_, donations := reopened.Snapshot()
	require.Len(t, donations, 1)
	assert.Equal(t, 1, donations[0].Likes)
}

func TestDonationLedger_Resanitize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "donations.json")
	l, err := NewDonationLedger(path)
	require.NoError(t, err)

	require.NoError(t, l.Append(newDonation(21, "no spam here")))
	require.NoError(t, l.Append(newDonation(10, "clean memo")))

	before := l.LastChanged()
	time.Sleep(5 * time.Millisecond)

	require.NoError(t, l.Resanitize(func(memo string) string {
		return strings.ReplaceAll(memo, "spam", "****")
	}))

	_, donations := l.Snapshot()
	assert.Equal(t, "no **** here", donations[0].Memo)
	assert.Equal(t, "clean memo", donations[1].Memo)
	assert.True(t, l.LastChanged().After(before))
}

func TestDonationLedger_SnapshotIsACopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "donations.json")
	l, err := NewDonationLedger(path)
	require.NoError(t, err)
	require.NoError(t, l.Append(newDonation(21, "hello")))

	_, donations := l.Snapshot()
	donations[0].Memo = "mutated"

	_, again := l.Snapshot()
	assert.Equal(t, "hello", again[0].Memo)
}

func TestDonationLedger_NoTempFilesLeftBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "donations.json")
	l, err := NewDonationLedger(path)
	require.NoError(t, err)
	require.NoError(t, l.Append(newDonation(21, "hello")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "donations.json", entries[0].Name())
}
