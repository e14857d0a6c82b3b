package airbridge

import "context"

// PartitionResolvable splits names into the identifiers of those that
// resolve in the linked table and the subsequence of those that do not.
// Order within each output list matches input order. A remote failure
// aborts the partition and is returned unmodified.
func PartitionResolvable(ctx context.Context, names []string, resolver Resolver) ([]string, []string, error) {
	var ids, unresolved []string
	for _, name := range names {
		id, ok, err := resolver.Resolve(ctx, name)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			ids = append(ids, id)
		} else {
			unresolved = append(unresolved, name)
		}
	}
	return ids, unresolved, nil
}
