package sequence

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/clipfunc/types"
)

type sub[T any] struct {
	src    Sequence[T]
	offset int
	length int
}

var _ Sequence[int] = (*sub[int])(nil)

// Sub returns the view of elements [start, end) of s. The full span
// returns s itself; a view of a view refers to the original sequence.
func Sub[T any](
	s Sequence[T],
	start, end int,
) (Sequence[T], error) {
	length := s.Len()
	if start < 0 || start > length {
		return nil, fmt.Errorf("invalid start of a sub-sequence: %w", types.ErrIndexOutOfRange{Index: start, Length: length})
	}
	if end < start || end > length {
		return nil, fmt.Errorf("invalid end of a sub-sequence: %w", types.ErrIndexOutOfRange{Index: end, Length: length})
	}
	if start == 0 && end == length {
		return s, nil
	}

	switch s := s.(type) {
	case *sub[T]:
		return &sub[T]{src: s.src, offset: s.offset + start, length: end - start}, nil
	case *concat[T]:
		return s.sub(start, end), nil
	}
	return &sub[T]{src: s, offset: start, length: end - start}, nil
}

func (s *sub[T]) Len() int {
	return s.length
}

func (s *sub[T]) Get(ctx context.Context, n int) (T, error) {
	if err := checkIndex(n, s.length); err != nil {
		var zeroValue T
		return zeroValue, err
	}
	return s.src.Get(ctx, s.offset+n)
}

func (s *sub[T]) String() string {
	return fmt.Sprintf("%v[%d:%d]", s.src, s.offset, s.offset+s.length)
}
