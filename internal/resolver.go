package internal

import (
	"context"
	"sync"

	"github.com/oviohub/airbridge"
)

// DefaultKeyColumn is the column linked-record names are matched against.
const DefaultKeyColumn = "Name"

// resolvedName is one memoized lookup outcome. Absence is cached the same
// way as presence.
type resolvedName struct {
	id string
	ok bool
}

// LinkedRecords resolves record names against the key column of one remote
// table so multiple mappers can share the same lookups. The table handle
// is dialed on first use; outcomes are memoized per name when caching is
// enabled.
type LinkedRecords struct {
	keyColumn string
	useCache  bool

	dial     func() airbridge.TableSearcher
	dialOnce sync.Once
	table    airbridge.TableSearcher

	cacheMu sync.RWMutex
	cache   map[string]resolvedName
}

// NewLinkedRecords creates a resolver over the table produced by dial. An
// empty keyColumn selects DefaultKeyColumn.
func NewLinkedRecords(keyColumn string, useCache bool, dial func() airbridge.TableSearcher) *LinkedRecords {
	if keyColumn == "" {
		keyColumn = DefaultKeyColumn
	}
	return &LinkedRecords{
		keyColumn: keyColumn,
		useCache:  useCache,
		dial:      dial,
		cache:     make(map[string]resolvedName),
	}
}

func (r *LinkedRecords) handle() airbridge.TableSearcher {
	r.dialOnce.Do(func() {
		r.table = r.dial()
	})
	return r.table
}

// Resolve looks up name in the key column and returns the identifier of
// the first matching record. Lookup failures are returned unmodified and
// never cached.
func (r *LinkedRecords) Resolve(ctx context.Context, name string) (string, bool, error) {
	if r.useCache {
		r.cacheMu.RLock()
		hit, ok := r.cache[name]
		r.cacheMu.RUnlock()
		if ok {
			return hit.id, hit.ok, nil
		}
	}

	records, err := r.handle().Search(ctx, r.keyColumn, name)
	if err != nil {
		return "", false, err
	}

	var result resolvedName
	if len(records) > 0 {
		result = resolvedName{id: records[0].ID, ok: true}
	}

	if r.useCache {
		r.cacheMu.Lock()
		r.cache[name] = result
		r.cacheMu.Unlock()
	}
	return result.id, result.ok, nil
}
