package airbridge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingInserter captures inserted rows.
type recordingInserter struct {
	rows []Row
	rec  Record
	err  error
}

func (i *recordingInserter) Insert(ctx context.Context, row Row) (Record, error) {
	i.rows = append(i.rows, row)
	return i.rec, i.err
}

// TestRelay_Submit tests that rows are handed to the table untouched.
func TestRelay_Submit(t *testing.T) {
	inserter := &recordingInserter{rec: Record{ID: "rec123"}}
	relay := NewRelay(inserter)

	row := Row{"Name": "Ada", "Are you a student?": true}
	rec, err := relay.Submit(context.Background(), row)
	require.NoError(t, err)
	assert.Equal(t, "rec123", rec.ID)

	require.Len(t, inserter.rows, 1)
	assert.Equal(t, row, inserter.rows[0])
}

// TestRelay_Submit_RemoteFailure tests that insert failures reach the
// caller unmodified.
func TestRelay_Submit_RemoteFailure(t *testing.T) {
	insertErr := errors.New("airtable: 422 Unprocessable Entity")
	relay := NewRelay(&recordingInserter{err: insertErr})

	_, err := relay.Submit(context.Background(), Row{"Name": "Ada"})
	assert.Same(t, insertErr, err)
}
