package query

import (
	"context"
	"sort"
	"strings"
)

// LessFunc orders two items ascending. Descending order negates the result by
// swapping arguments, so one comparator serves both directions.
type LessFunc[T any] func(a, b T) bool

// Definition describes how one entity participates in the pipeline: which
// string fields the search term matches against and which comparators the
// orderBy parameter may select. Comparators form an explicit allow-list;
// an orderBy value with no entry falls back to DefaultLess without error.
type Definition[T any] struct {
	// SearchFields extracts the searchable strings of one item.
	SearchFields func(T) []string
	// Less maps orderBy field names (case-insensitive) to comparators.
	Less map[string]LessFunc[T]
	// DefaultLess orders results when orderBy is absent or unknown.
	DefaultLess LessFunc[T]
}

// Result is one page plus the pre-pagination match count.
type Result[T any] struct {
	Items      []T
	TotalCount int
}

// Run applies the pipeline to the candidate set: case-insensitive substring
// search, count, ordering, then the skip/take window. The input slice is
// never mutated. A skip past the end yields an empty page, not an error.
// Ties keep their original relative order.
func Run[T any](ctx context.Context, items []T, spec Spec, def Definition[T]) (Result[T], error) {
	if err := ctx.Err(); err != nil {
		return Result[T]{}, err
	}

	filtered := items
	if term := strings.TrimSpace(spec.SearchTerm); term != "" {
		needle := strings.ToLower(term)
		filtered = make([]T, 0, len(items))
		for _, item := range items {
			if err := ctx.Err(); err != nil {
				return Result[T]{}, err
			}
			for _, field := range def.SearchFields(item) {
				if strings.Contains(strings.ToLower(field), needle) {
					filtered = append(filtered, item)
					break
				}
			}
		}
	} else {
		// Sorting below must not reorder the caller's slice.
		filtered = append([]T(nil), items...)
	}

	total := len(filtered)

	less := def.DefaultLess
	if spec.OrderBy != "" {
		if l, ok := def.Less[strings.ToLower(spec.OrderBy)]; ok {
			less = l
		}
	}
	if less != nil {
		if spec.OrderDescending {
			asc := less
			less = func(a, b T) bool { return asc(b, a) }
		}
		sort.SliceStable(filtered, func(i, j int) bool {
			return less(filtered[i], filtered[j])
		})
	}

	if err := ctx.Err(); err != nil {
		return Result[T]{}, err
	}

	start := spec.Skip
	if start > total {
		start = total
	}
	end := start + spec.Take
	if end > total {
		end = total
	}

	return Result[T]{Items: filtered[start:end], TotalCount: total}, nil
}
