package airbridge

import (
	"context"
	"strconv"
	"strings"
)

// positiveIntMapper parses a form field as a non-negative integer.
type positiveIntMapper struct {
	key string
}

func (m *positiveIntMapper) Map(ctx context.Context, sub Submission) (any, error) {
	raw, ok := sub.Get(m.key)
	if !ok {
		return 0, nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || i < 0 {
		return 0, nil
	}
	return i, nil
}

// PositiveInt returns a mapper that parses the field as a non-negative
// integer. Missing, malformed, and negative input all yield 0 rather than
// an error.
func PositiveInt(key string) FieldMapper {
	return &positiveIntMapper{key: key}
}

// checkboxMapper maps the HTML checkbox convention to a boolean.
type checkboxMapper struct {
	key string
}

func (m *checkboxMapper) Map(ctx context.Context, sub Submission) (any, error) {
	if raw, ok := sub.Get(m.key); ok && raw == "on" {
		return true, nil
	}
	return nil, nil
}

// Checkbox returns a mapper that yields true when the field is present and
// equals "on". Every other input, including "off" and absence, yields an
// absent field rather than false.
func Checkbox(key string) FieldMapper {
	return &checkboxMapper{key: key}
}

// listMapper collects all values of a multi-value form field.
type listMapper struct {
	key string
}

func (m *listMapper) Map(ctx context.Context, sub Submission) (any, error) {
	return sub.List(m.key), nil
}

// FromList returns a mapper that yields every value submitted under key,
// in submission order.
func FromList(key string) FieldMapper {
	return &listMapper{key: key}
}

// joinKeysMapper joins the first values of several form fields.
type joinKeysMapper struct {
	sep  string
	keys []string
}

func (m *joinKeysMapper) Map(ctx context.Context, sub Submission) (any, error) {
	parts := make([]string, 0, len(m.keys))
	for _, key := range m.keys {
		raw, ok := sub.Get(key)
		if !ok {
			return nil, nil
		}
		parts = append(parts, raw)
	}
	return strings.Join(parts, m.sep), nil
}

// JoinKeys returns a mapper that joins the first values of the given keys
// with sep. The result is absent when any of the keys is missing.
func JoinKeys(sep string, keys ...string) FieldMapper {
	return &joinKeysMapper{sep: sep, keys: keys}
}

// filterMapper keeps or drops list values by membership in a fixed set.
type filterMapper struct {
	src     FieldMapper
	members map[string]bool
	keep    bool
}

func (m *filterMapper) Map(ctx context.Context, sub Submission) (any, error) {
	v, err := m.src.Map(ctx, sub)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, value := range stringList(v) {
		if m.members[value] == m.keep {
			out = append(out, value)
		}
	}
	return out, nil
}

// FilterIn returns a mapper that keeps the values of src contained in
// members, preserving order.
func FilterIn(src FieldMapper, members []string) FieldMapper {
	return &filterMapper{src: src, members: memberSet(members), keep: true}
}

// FilterNotIn returns a mapper that keeps the values of src not contained
// in members, preserving order.
func FilterNotIn(src FieldMapper, members []string) FieldMapper {
	return &filterMapper{src: src, members: memberSet(members), keep: false}
}

func memberSet(members []string) map[string]bool {
	set := make(map[string]bool, len(members))
	for _, member := range members {
		set[member] = true
	}
	return set
}

// remapMapper translates list values through a fixed vocabulary.
type remapMapper struct {
	src   FieldMapper
	vocab map[string]string
}

func (m *remapMapper) Map(ctx context.Context, sub Submission) (any, error) {
	v, err := m.src.Map(ctx, sub)
	if err != nil {
		return nil, err
	}
	list := stringList(v)
	out := make([]string, len(list))
	for i, value := range list {
		if mapped, ok := m.vocab[value]; ok {
			out[i] = mapped
		} else {
			out[i] = value
		}
	}
	return out, nil
}

// Remap returns a mapper that replaces each value of src with its
// vocabulary translation, keeping values the vocabulary does not know
// unchanged.
func Remap(src FieldMapper, vocab map[string]string) FieldMapper {
	return &remapMapper{src: src, vocab: vocab}
}

// resolveIDsMapper converts names to linked-record identifiers.
type resolveIDsMapper struct {
	src      FieldMapper
	resolver Resolver
}

func (m *resolveIDsMapper) Map(ctx context.Context, sub Submission) (any, error) {
	v, err := m.src.Map(ctx, sub)
	if err != nil {
		return nil, err
	}
	ids, _, err := PartitionResolvable(ctx, stringList(v), m.resolver)
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ResolveIDs returns a mapper that yields the identifiers of the values of
// src found in the linked table. Names with no match are dropped.
func ResolveIDs(src FieldMapper, resolver Resolver) FieldMapper {
	return &resolveIDsMapper{src: src, resolver: resolver}
}

// unresolvedMapper keeps the names that have no linked record.
type unresolvedMapper struct {
	src      FieldMapper
	resolver Resolver
}

func (m *unresolvedMapper) Map(ctx context.Context, sub Submission) (any, error) {
	v, err := m.src.Map(ctx, sub)
	if err != nil {
		return nil, err
	}
	_, unresolved, err := PartitionResolvable(ctx, stringList(v), m.resolver)
	if err != nil {
		return nil, err
	}
	return unresolved, nil
}

// Unresolved returns a mapper that yields the values of src with no match
// in the linked table, preserving order.
func Unresolved(src FieldMapper, resolver Resolver) FieldMapper {
	return &unresolvedMapper{src: src, resolver: resolver}
}

// joinListMapper joins a list value into a single string.
type joinListMapper struct {
	src FieldMapper
	sep string
}

func (m *joinListMapper) Map(ctx context.Context, sub Submission) (any, error) {
	v, err := m.src.Map(ctx, sub)
	if err != nil {
		return nil, err
	}
	list := stringList(v)
	if len(list) == 0 {
		return nil, nil
	}
	return strings.Join(list, m.sep), nil
}

// JoinList returns a mapper that joins the values of src with sep. An
// empty list yields an absent field rather than an empty string.
func JoinList(src FieldMapper, sep string) FieldMapper {
	return &joinListMapper{src: src, sep: sep}
}

// stringList coerces an upstream mapper value to a string list. Absent and
// non-list values come back empty.
func stringList(v any) []string {
	if list, ok := v.([]string); ok {
		return list
	}
	return nil
}
