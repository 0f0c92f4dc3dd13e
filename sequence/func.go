package sequence

import (
	"context"
	"fmt"
)

// FuncT is a Sequence whose elements are computed by a callback on
// each request.
type FuncT[T any] struct {
	Length int
	Fn     func(ctx context.Context, n int) (T, error)
}

var _ Sequence[int] = (*FuncT[int])(nil)

func Func[T any](
	length int,
	fn func(ctx context.Context, n int) (T, error),
) *FuncT[T] {
	return &FuncT[T]{
		Length: length,
		Fn:     fn,
	}
}

func (s *FuncT[T]) Len() int {
	return s.Length
}

func (s *FuncT[T]) Get(ctx context.Context, n int) (T, error) {
	if err := checkIndex(n, s.Length); err != nil {
		var zeroValue T
		return zeroValue, err
	}
	return s.Fn(ctx, n)
}

func (s *FuncT[T]) String() string {
	return fmt.Sprintf("Func(%d)", s.Length)
}

// Map lazily converts each element of the sequence.
func Map[T, U any](
	src Sequence[T],
	fn func(ctx context.Context, n int, item T) (U, error),
) Sequence[U] {
	return Func(src.Len(), func(ctx context.Context, n int) (U, error) {
		item, err := src.Get(ctx, n)
		if err != nil {
			var zeroValue U
			return zeroValue, err
		}
		return fn(ctx, n, item)
	})
}

// Eval returns a sequence where element n is element n of whatever
// sequence fn picks for it. fn is called only when element n is requested.
func Eval[T any](
	length int,
	fn func(ctx context.Context, n int) (Sequence[T], error),
) Sequence[T] {
	return Func(length, func(ctx context.Context, n int) (T, error) {
		src, err := fn(ctx, n)
		if err != nil {
			var zeroValue T
			return zeroValue, fmt.Errorf("unable to pick the source for element #%d: %w", n, err)
		}
		return src.Get(ctx, n)
	})
}
