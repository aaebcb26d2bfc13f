package storage

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsartorelli/book-site-backend/errs"
)

// brokenSlot fails every operation once failing is set. It stands in for a
// database that has gone away mid-flight.
type brokenSlot struct {
	inner   *MemorySlot
	failing bool
}

func newBrokenSlot() *brokenSlot {
	return &brokenSlot{inner: NewMemorySlot()}
}

var errBackendDown = errors.New("backend down")

func (s *brokenSlot) Get(key string) (string, error) {
	if s.failing {
		return "", errBackendDown
	}
	return s.inner.Get(key)
}

func (s *brokenSlot) Set(key, value string) error {
	if s.failing {
		return errBackendDown
	}
	return s.inner.Set(key, value)
}

func (s *brokenSlot) Remove(key string) error {
	if s.failing {
		return errBackendDown
	}
	return s.inner.Remove(key)
}

func TestMemorySlot(t *testing.T) {
	slot := NewMemorySlot()

	_, err := slot.Get("missing")
	assert.ErrorIs(t, err, errs.ErrSlotEmpty)

	require.NoError(t, slot.Set("key", "value"))
	value, err := slot.Get("key")
	require.NoError(t, err)
	assert.Equal(t, "value", value)

	require.NoError(t, slot.Remove("key"))
	_, err = slot.Get("key")
	assert.ErrorIs(t, err, errs.ErrSlotEmpty)

	// Removing an absent key is not an error
	assert.NoError(t, slot.Remove("key"))
}

func TestFallbackSlot_PrimaryHealthy(t *testing.T) {
	primary := newBrokenSlot()
	slot := NewFallbackSlot(primary, zerolog.Nop())

	require.NoError(t, slot.Set("key", "value"))

	value, err := slot.Get("key")
	require.NoError(t, err)
	assert.Equal(t, "value", value)

	// The write went to the primary, not just the fallback
	value, err = primary.inner.Get("key")
	require.NoError(t, err)
	assert.Equal(t, "value", value)

	assert.True(t, slot.Available())
}

func TestFallbackSlot_AbsorbsWriteFailures(t *testing.T) {
	primary := newBrokenSlot()
	primary.failing = true
	slot := NewFallbackSlot(primary, zerolog.Nop())

	// Writes land in memory even though the primary is down
	require.NoError(t, slot.Set("key", "value"))

	value, err := slot.Get("key")
	require.NoError(t, err)
	assert.Equal(t, "value", value)

	assert.False(t, slot.Available())
}

func TestFallbackSlot_ServesStaleReadsDuringOutage(t *testing.T) {
	primary := newBrokenSlot()
	slot := NewFallbackSlot(primary, zerolog.Nop())

	require.NoError(t, slot.Set("key", "value"))
	primary.failing = true

	// The successful write was mirrored, so the outage is invisible to reads
	value, err := slot.Get("key")
	require.NoError(t, err)
	assert.Equal(t, "value", value)
}

func TestFallbackSlot_RemoveHoldsThroughPrimaryOutage(t *testing.T) {
	primary := newBrokenSlot()
	slot := NewFallbackSlot(primary, zerolog.Nop())

	require.NoError(t, slot.Set("key", "value"))

	primary.failing = true
	require.NoError(t, slot.Remove("key"))

	// Removed for the caller even though the primary still holds the row
	_, err := slot.Get("key")
	assert.ErrorIs(t, err, errs.ErrSlotEmpty)

	// A recovered primary does not resurrect the value; the queued removal
	// is applied to it instead
	primary.failing = false
	_, err = slot.Get("key")
	assert.ErrorIs(t, err, errs.ErrSlotEmpty)
	_, err = primary.inner.Get("key")
	assert.ErrorIs(t, err, errs.ErrSlotEmpty)

	// A later write supersedes the removal
	require.NoError(t, slot.Set("key", "fresh"))
	value, err := slot.Get("key")
	require.NoError(t, err)
	assert.Equal(t, "fresh", value)
}

func TestFallbackSlot_AbsentKeyIsEmptyNotError(t *testing.T) {
	slot := NewFallbackSlot(newBrokenSlot(), zerolog.Nop())

	_, err := slot.Get("missing")
	assert.ErrorIs(t, err, errs.ErrSlotEmpty)
}
