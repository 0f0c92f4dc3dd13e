// sequence.go defines the Sequence interface.

// Package sequence provides lazily evaluated indexable sequences
// (clips of frames, per-frame metrics, etc) and the views over them:
// sub-ranges, concatenations and per-index evaluation.
package sequence

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/clipfunc/types"
)

// Sequence is an immutable indexable collection. Get may compute the
// element on demand; it must be idempotent for the same index.
type Sequence[T any] interface {
	Len() int
	Get(ctx context.Context, n int) (T, error)
}

func checkIndex(n, length int) error {
	if n < 0 || n >= length {
		return types.ErrIndexOutOfRange{Index: n, Length: length}
	}
	return nil
}

// Collect materializes the whole sequence.
func Collect[T any](
	ctx context.Context,
	s Sequence[T],
) ([]T, error) {
	result := make([]T, 0, s.Len())
	for n := range s.Len() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		item, err := s.Get(ctx, n)
		if err != nil {
			return nil, fmt.Errorf("unable to get element #%d: %w", n, err)
		}
		result = append(result, item)
	}
	return result, nil
}
