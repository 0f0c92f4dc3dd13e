package sequence

import (
	"context"
	"fmt"
)

// Slice is an in-memory Sequence.
type Slice[T any] []T

var _ Sequence[int] = (Slice[int])(nil)

func (s Slice[T]) Len() int {
	return len(s)
}

func (s Slice[T]) Get(_ context.Context, n int) (T, error) {
	if err := checkIndex(n, len(s)); err != nil {
		var zeroValue T
		return zeroValue, err
	}
	return s[n], nil
}

// Repeat returns a Sequence of count copies of v.
func Repeat[T any](v T, count int) Sequence[T] {
	return Func(count, func(context.Context, int) (T, error) {
		return v, nil
	})
}

func (s Slice[T]) String() string {
	return fmt.Sprintf("Slice(%d)", len(s))
}
