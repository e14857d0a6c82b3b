package airbridge

import "context"

// Submission is one parsed form submission: a mapping from source field
// name to the values posted under it. Multi-value fields follow the HTML
// form convention of a "[]" suffix on the field name (e.g. "skills[]").
// A Submission is built once per request and read-only from there on.
type Submission map[string][]string

// Get returns the first value submitted under key.
func (s Submission) Get(key string) (string, bool) {
	values, ok := s[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// List returns a copy of all values submitted under key.
func (s Submission) List(key string) []string {
	values := s[key]
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// Row is the destination row sent to the remote table: destination field
// name to scalar string, int, bool, list of record identifiers, or joined
// string. Absent fields are omitted rather than set to null.
type Row map[string]any

// Record is a row of a remote table as returned by search and insert.
type Record struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// Resolver maps a human-readable record name to the identifier of the
// matching row in a linked table. ok is false when no row matches; err is
// reserved for remote failures.
type Resolver interface {
	Resolve(ctx context.Context, name string) (id string, ok bool, err error)
}

// TableSearcher finds the records of a remote table whose column equals
// value.
type TableSearcher interface {
	Search(ctx context.Context, column, value string) ([]Record, error)
}

// TableInserter appends a row to a remote table.
type TableInserter interface {
	Insert(ctx context.Context, row Row) (Record, error)
}
