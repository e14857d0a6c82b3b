package airbridge

import "context"

// FieldMapper derives a single destination value from a submission.
type FieldMapper interface {
	// Map returns the destination value, or nil when the field should be
	// absent from the output row. A non-nil error is only returned for
	// remote lookup failures.
	Map(ctx context.Context, sub Submission) (any, error)
}

// FieldMapping describes a single destination field: either a straight
// rename of a source form key, or a value computed by a FieldMapper.
type FieldMapping struct {
	Field     string      // destination field name
	SourceKey string      // source form key for renames
	Mapper    FieldMapper // transformer for computed fields; nil for renames
}

// MapperBuilder provides a fluent API for building row mappers.
type MapperBuilder struct {
	mappings []FieldMapping
}

// NewMapperBuilder creates an empty MapperBuilder.
func NewMapperBuilder() *MapperBuilder {
	return &MapperBuilder{
		mappings: make([]FieldMapping, 0),
	}
}

// Rename adds a straight rename from a source form key to a destination
// field.
func (b *MapperBuilder) Rename(field, sourceKey string) *MapperBuilder {
	b.mappings = append(b.mappings, FieldMapping{
		Field:     field,
		SourceKey: sourceKey,
	})
	return b
}

// MapWith adds a computed destination field.
func (b *MapperBuilder) MapWith(field string, mapper FieldMapper) *MapperBuilder {
	b.mappings = append(b.mappings, FieldMapping{
		Field:  field,
		Mapper: mapper,
	})
	return b
}

// Build creates the RowMapper from the builder configuration.
func (b *MapperBuilder) Build() *RowMapper {
	return &RowMapper{
		mappings: b.mappings,
	}
}

// RowMapper applies a field mapping table to submissions.
type RowMapper struct {
	mappings []FieldMapping
}

// Mappings returns the field mapping table.
func (m *RowMapper) Mappings() []FieldMapping {
	return m.mappings
}

// MapRow transforms one submission into a destination row. Mappings are
// evaluated in declaration order; a rename whose source key is missing and
// a mapper that yields nil both leave their destination field out of the
// row entirely. Malformed input degrades inside the mappers and never
// surfaces here. The only errors returned are remote lookup failures,
// passed through unmodified.
func (m *RowMapper) MapRow(ctx context.Context, sub Submission) (Row, error) {
	row := make(Row)
	for _, mapping := range m.mappings {
		var value any
		if mapping.Mapper != nil {
			v, err := mapping.Mapper.Map(ctx, sub)
			if err != nil {
				return nil, err
			}
			value = v
		} else if raw, ok := sub.Get(mapping.SourceKey); ok {
			value = raw
		}

		value = normalizeValue(value)
		if value == nil {
			continue
		}
		row[mapping.Field] = value
	}
	return row, nil
}

// normalizeValue drops nil entries from list values and collapses empty
// lists to absent. Strings are never treated as lists.
func normalizeValue(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case []string:
		if len(v) == 0 {
			return nil
		}
		return v
	case []any:
		kept := make([]any, 0, len(v))
		for _, entry := range v {
			if entry != nil {
				kept = append(kept, entry)
			}
		}
		if len(kept) == 0 {
			return nil
		}
		return kept
	default:
		return value
	}
}
