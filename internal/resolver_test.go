package internal

import (
	"context"
	"errors"
	"testing"

	"github.com/oviohub/airbridge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSearcher is a fake remote table that records search traffic.
type countingSearcher struct {
	records map[string][]airbridge.Record
	calls   int
	column  string
	err     error
}

func (s *countingSearcher) Search(ctx context.Context, column, value string) ([]airbridge.Record, error) {
	s.calls++
	s.column = column
	if s.err != nil {
		return nil, s.err
	}
	return s.records[value], nil
}

func dialTo(searcher airbridge.TableSearcher) func() airbridge.TableSearcher {
	return func() airbridge.TableSearcher { return searcher }
}

// TestLinkedRecords_Resolve tests lookup against the key column with
// first-match-wins on duplicate keys.
func TestLinkedRecords_Resolve(t *testing.T) {
	searcher := &countingSearcher{records: map[string][]airbridge.Record{
		"Go": {{ID: "rec001"}, {ID: "rec001-dup"}},
	}}
	resolver := NewLinkedRecords("", true, dialTo(searcher))

	id, ok, err := resolver.Resolve(context.Background(), "Go")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "rec001", id)
	assert.Equal(t, DefaultKeyColumn, searcher.column)

	_, ok, err = resolver.Resolve(context.Background(), "Basket Weaving")
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestLinkedRecords_KeyColumn tests that a custom key column reaches the
// search.
func TestLinkedRecords_KeyColumn(t *testing.T) {
	searcher := &countingSearcher{}
	resolver := NewLinkedRecords("Label", false, dialTo(searcher))

	_, _, err := resolver.Resolve(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "Label", searcher.column)
}

// TestLinkedRecords_CacheIdempotence tests that an enabled cache issues
// exactly one remote query per name, a disabled cache one per call.
func TestLinkedRecords_CacheIdempotence(t *testing.T) {
	searcher := &countingSearcher{records: map[string][]airbridge.Record{
		"Go": {{ID: "rec001"}},
	}}
	cached := NewLinkedRecords("", true, dialTo(searcher))

	for i := 0; i < 3; i++ {
		id, ok, err := cached.Resolve(context.Background(), "Go")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "rec001", id)
	}
	assert.Equal(t, 1, searcher.calls)

	uncachedSearcher := &countingSearcher{records: map[string][]airbridge.Record{
		"Go": {{ID: "rec001"}},
	}}
	uncached := NewLinkedRecords("", false, dialTo(uncachedSearcher))

	for i := 0; i < 2; i++ {
		_, _, err := uncached.Resolve(context.Background(), "Go")
		require.NoError(t, err)
	}
	assert.Equal(t, 2, uncachedSearcher.calls)
}

// TestLinkedRecords_CachesAbsence tests that a zero-match outcome is
// memoized the same way as a hit.
func TestLinkedRecords_CachesAbsence(t *testing.T) {
	searcher := &countingSearcher{}
	resolver := NewLinkedRecords("", true, dialTo(searcher))

	for i := 0; i < 2; i++ {
		_, ok, err := resolver.Resolve(context.Background(), "Basket Weaving")
		require.NoError(t, err)
		assert.False(t, ok)
	}
	assert.Equal(t, 1, searcher.calls)
}

// TestLinkedRecords_LazyDial tests that the table handle is not dialed
// until the first lookup.
func TestLinkedRecords_LazyDial(t *testing.T) {
	dialed := false
	searcher := &countingSearcher{}
	resolver := NewLinkedRecords("", true, func() airbridge.TableSearcher {
		dialed = true
		return searcher
	})

	assert.False(t, dialed)

	_, _, err := resolver.Resolve(context.Background(), "Go")
	require.NoError(t, err)
	assert.True(t, dialed)
}

// TestLinkedRecords_ErrorNotCached tests that lookup failures propagate
// unmodified and do not poison the cache.
func TestLinkedRecords_ErrorNotCached(t *testing.T) {
	lookupErr := errors.New("airtable error: boom (status 500)")
	searcher := &countingSearcher{
		records: map[string][]airbridge.Record{"Go": {{ID: "rec001"}}},
		err:     lookupErr,
	}
	resolver := NewLinkedRecords("", true, dialTo(searcher))

	_, _, err := resolver.Resolve(context.Background(), "Go")
	assert.Same(t, lookupErr, err)

	searcher.err = nil
	id, ok, err := resolver.Resolve(context.Background(), "Go")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "rec001", id)
	assert.Equal(t, 2, searcher.calls)
}
