package storage

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsartorelli/book-site-backend/errs"
)

// countingSlot records how many writes each key has seen.
type countingSlot struct {
	*MemorySlot
	writes map[string]int
}

func newCountingSlot() *countingSlot {
	return &countingSlot{MemorySlot: NewMemorySlot(), writes: make(map[string]int)}
}

func (s *countingSlot) Set(key, value string) error {
	s.writes[key]++
	return s.MemorySlot.Set(key, value)
}

type testRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r testRecord) Validate() error {
	if r.ID == "" {
		return errs.NewMissingRequiredFieldError("id")
	}
	return nil
}

func seedRecords() []testRecord {
	return []testRecord{{ID: "1", Name: "first"}, {ID: "2", Name: "second"}}
}

func TestLoad_SeedsAbsentSlotOnce(t *testing.T) {
	slot := newCountingSlot()
	store := NewStore(slot, zerolog.Nop())

	records := Load(store, "collection", seedRecords)
	assert.Equal(t, seedRecords(), records)
	assert.Equal(t, 1, slot.writes["collection"])

	// A second load reads the persisted seed without writing again
	records = Load(store, "collection", seedRecords)
	assert.Equal(t, seedRecords(), records)
	assert.Equal(t, 1, slot.writes["collection"])
}

func TestLoad_EmptyCollectionIsNotReseeded(t *testing.T) {
	slot := newCountingSlot()
	store := NewStore(slot, zerolog.Nop())

	require.NoError(t, Save(store, "collection", []testRecord{}))

	records := Load(store, "collection", seedRecords)
	assert.Empty(t, records)
}

func TestLoad_CorruptValueReseeds(t *testing.T) {
	for name, stored := range map[string]string{
		"not json":          "{{{",
		"not an array":      `{"id":"1"}`,
		"null":              "null",
		"invalid record":    `[{"name":"no id"}]`,
		"wrong shaped item": `["just a string"]`,
	} {
		t.Run(name, func(t *testing.T) {
			slot := newCountingSlot()
			store := NewStore(slot, zerolog.Nop())
			require.NoError(t, slot.Set("collection", stored))

			records := Load(store, "collection", seedRecords)
			assert.Equal(t, seedRecords(), records)

			// The seed replaced the corrupt value in storage
			raw, err := slot.Get("collection")
			require.NoError(t, err)
			assert.JSONEq(t, `[{"id":"1","name":"first"},{"id":"2","name":"second"}]`, raw)
		})
	}
}

func TestSave_NilStoresEmptyArray(t *testing.T) {
	slot := newCountingSlot()
	store := NewStore(slot, zerolog.Nop())

	require.NoError(t, Save(store, "collection", []testRecord(nil)))

	raw, err := slot.Get("collection")
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestSave_WriteFailureIsSaveFailed(t *testing.T) {
	primary := newBrokenSlot()
	primary.failing = true
	store := NewStore(primary, zerolog.Nop())

	err := Save(store, "collection", seedRecords())
	assert.ErrorIs(t, err, errs.ErrSaveFailed)
}
