// Package batch applies a save to every element of a list and keeps the
// outcome of each one.
package batch

import (
	"context"

	"github.com/Domenick1991/airops/internal/domain"
)

// Apply saves items in order. A failing item is recorded and the rest are
// still attempted. id is read after save so created items report their new id.
func Apply[T any](ctx context.Context, items []T, id func(*T) int64, save func(context.Context, *T) error) domain.BatchResult {
	result := domain.BatchResult{Succeeded: []int64{}, Failed: []domain.ItemError{}}
	for i := range items {
		item := &items[i]
		if err := save(ctx, item); err != nil {
			result.Failed = append(result.Failed, domain.NewItemError(i, id(item), err))
			continue
		}
		result.Succeeded = append(result.Succeeded, id(item))
	}
	return result
}
