package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceStore_FirstObservation(t *testing.T) {
	s := NewBalanceStore(t.TempDir())

	_, found, err := s.Load("main")
	require.NoError(t, err)
	assert.False(t, found, "absent snapshot must report first observation")
}

func TestBalanceStore_SaveAndLoad(t *testing.T) {
	s := NewBalanceStore(t.TempDir())

	require.NoError(t, s.Save("main", 21000))

	sats, found, err := s.Load("main")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(21000), sats)
}

func TestBalanceStore_PerWalletFiles(t *testing.T) {
	s := NewBalanceStore(t.TempDir())

	require.NoError(t, s.Save("main", 100))
	require.NoError(t, s.Save("aux1", 200))

	sats, _, err := s.Load("main")
	require.NoError(t, err)
	assert.Equal(t, int64(100), sats)

	sats, _, err = s.Load("aux1")
	require.NoError(t, err)
	assert.Equal(t, int64(200), sats)
}

func TestBalanceStore_CorruptContentLoadsAsZero(t *testing.T) {
	dir := t.TempDir()
	s := NewBalanceStore(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main-balance.txt"), []byte("not-a-number"), 0o600))

	sats, found, err := s.Load("main")
	require.NoError(t, err, "corrupt content must not fail the poll cycle")
	assert.True(t, found)
	assert.Zero(t, sats)
}

func TestBalanceStore_EmptyFileLoadsAsZero(t *testing.T) {
	dir := t.TempDir()
	s := NewBalanceStore(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main-balance.txt"), []byte("  \n"), 0o600))

	sats, found, err := s.Load("main")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Zero(t, sats)
}

func TestBalanceStore_Overwrite(t *testing.T) {
	s := NewBalanceStore(t.TempDir())

	require.NoError(t, s.Save("main", 100))
	require.NoError(t, s.Save("main", 90))

	sats, _, err := s.Load("main")
	require.NoError(t, err)
	assert.Equal(t, int64(90), sats)
}
