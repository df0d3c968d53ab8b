package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *Manager {
	t.Helper()
	m, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	return m
}

func TestList_Empty(t *testing.T) {
	m := openTest(t)

	entries, err := m.List(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecordAndList(t *testing.T) {
	m := openTest(t)
	base := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, m.Record(Entry{
		CreatedAt:     base,
		Command:       "hide",
		Method:        "lossless",
		CarrierPath:   "base.png",
		SecretPath:    "secret.png",
		OutputPath:    "secret_hidden.png",
		CarrierWidth:  100,
		CarrierHeight: 80,
		PayloadSlots:  609,
		Resized:       true,
	}))
	require.NoError(t, m.Record(Entry{
		CreatedAt:     base.Add(time.Minute),
		Command:       "reveal",
		Method:        "lossless",
		CarrierPath:   "secret_hidden.png",
		OutputPath:    "secret_hidden_revealed.png",
		CarrierWidth:  100,
		CarrierHeight: 80,
	}))

	entries, err := m.List(0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "reveal", entries[0].Command)
	assert.Empty(t, entries[0].SecretPath)

	hide := entries[1]
	assert.Equal(t, "hide", hide.Command)
	assert.Equal(t, "secret.png", hide.SecretPath)
	assert.Equal(t, 609, hide.PayloadSlots)
	assert.True(t, hide.Resized)
	assert.True(t, hide.CreatedAt.Equal(base))
	assert.NotZero(t, hide.ID)
}

func TestList_Limit(t *testing.T) {
	m := openTest(t)
	for i := range 5 {
		require.NoError(t, m.Record(Entry{Command: "hide", Method: "lossy", CarrierPath: "b.png",
			OutputPath: "o.png", CarrierWidth: i + 1, CarrierHeight: 1}))
	}

	entries, err := m.List(3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestRecord_DefaultsTimestamp(t *testing.T) {
	m := openTest(t)
	before := time.Now()

	require.NoError(t, m.Record(Entry{Command: "merge", Method: "lossy", CarrierPath: "a", OutputPath: "b"}))

	entries, err := m.List(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].CreatedAt.Before(before.Truncate(time.Second)))
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history.db")

	m, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, m.Record(Entry{Command: "hide", Method: "jpeg", CarrierPath: "a", OutputPath: "b"}))
	require.NoError(t, m.Close())

	m, err = Open(path)
	require.NoError(t, err)
	defer m.Close()
	entries, err := m.List(0)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestMock(t *testing.T) {
	m := NewMock()
	require.NoError(t, m.Record(Entry{Command: "hide"}))
	require.NoError(t, m.Record(Entry{Command: "reveal"}))

	entries, err := m.List(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "reveal", entries[0].Command)

	require.NoError(t, m.Close())
	assert.True(t, m.Closed())
}
