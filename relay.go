package airbridge

import "context"

// Relay forwards finished rows to the remote table.
type Relay struct {
	table TableInserter
}

// NewRelay creates a Relay writing to the given table.
func NewRelay(table TableInserter) *Relay {
	return &Relay{table: table}
}

// Submit inserts the row into the remote table. Remote errors are returned
// to the caller unmodified; there is no retry and no validation.
func (r *Relay) Submit(ctx context.Context, row Row) (Record, error) {
	return r.table.Insert(ctx, row)
}
