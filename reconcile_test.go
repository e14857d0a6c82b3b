package airbridge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPartitionResolvable tests the stable split of names into resolved
// identifiers and leftovers.
func TestPartitionResolvable(t *testing.T) {
	resolver := &stubResolver{ids: map[string]string{
		"Go":     "rec001",
		"SQL":    "rec002",
		"Python": "rec003",
	}}

	names := []string{"Go", "Basket Weaving", "SQL", "Juggling", "Python"}
	ids, unresolved, err := PartitionResolvable(context.Background(), names, resolver)
	require.NoError(t, err)

	// Both halves preserve input order
	assert.Equal(t, []string{"rec001", "rec002", "rec003"}, ids)
	assert.Equal(t, []string{"Basket Weaving", "Juggling"}, unresolved)
}

// TestPartitionResolvable_Empty tests the trivial partition.
func TestPartitionResolvable_Empty(t *testing.T) {
	ids, unresolved, err := PartitionResolvable(context.Background(), nil, &stubResolver{})
	require.NoError(t, err)
	assert.Nil(t, ids)
	assert.Nil(t, unresolved)
}

// TestPartitionResolvable_RemoteFailure tests that the partition aborts on
// the first lookup failure and hands the error back unmodified.
func TestPartitionResolvable_RemoteFailure(t *testing.T) {
	lookupErr := errors.New("airtable: 500 Internal Server Error")
	ids, unresolved, err := PartitionResolvable(
		context.Background(),
		[]string{"Go", "SQL"},
		&failingResolver{err: lookupErr},
	)

	assert.Same(t, lookupErr, err)
	assert.Nil(t, ids)
	assert.Nil(t, unresolved)
}
