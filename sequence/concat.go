package sequence

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

type concat[T any] struct {
	parts []Sequence[T]

	// ends[i] is the index right after the last element of parts[i].
	ends []int
}

var _ Sequence[int] = (*concat[int])(nil)

// Concat returns the lazy concatenation of the parts. Empty parts are
// skipped and nested concatenations are flattened, so repeated
// splicing does not build deep view chains.
func Concat[T any](parts ...Sequence[T]) Sequence[T] {
	c := &concat[T]{}
	for _, part := range parts {
		c.append(part)
	}
	if len(c.parts) == 1 {
		return c.parts[0]
	}
	return c
}

func (c *concat[T]) append(part Sequence[T]) {
	if part == nil || part.Len() == 0 {
		return
	}
	if nested, ok := part.(*concat[T]); ok {
		for _, p := range nested.parts {
			c.append(p)
		}
		return
	}
	c.parts = append(c.parts, part)
	c.ends = append(c.ends, c.Len()+part.Len())
}

func (c *concat[T]) Len() int {
	if len(c.ends) == 0 {
		return 0
	}
	return c.ends[len(c.ends)-1]
}

// locate returns the index of the part containing element n and the
// index of the element within that part.
func (c *concat[T]) locate(n int) (int, int) {
	idx := sort.SearchInts(c.ends, n+1)
	start := 0
	if idx > 0 {
		start = c.ends[idx-1]
	}
	return idx, n - start
}

func (c *concat[T]) Get(ctx context.Context, n int) (T, error) {
	if err := checkIndex(n, c.Len()); err != nil {
		var zeroValue T
		return zeroValue, err
	}
	idx, local := c.locate(n)
	return c.parts[idx].Get(ctx, local)
}

func (c *concat[T]) sub(start, end int) Sequence[T] {
	if start == end {
		return Slice[T](nil)
	}
	firstIdx, firstLocal := c.locate(start)
	lastIdx, lastLocal := c.locate(end - 1)

	var parts []Sequence[T]
	for idx := firstIdx; idx <= lastIdx; idx++ {
		part := c.parts[idx]
		partStart, partEnd := 0, part.Len()
		if idx == firstIdx {
			partStart = firstLocal
		}
		if idx == lastIdx {
			partEnd = lastLocal + 1
		}
		view, err := Sub(part, partStart, partEnd)
		if err != nil {
			// bounds come from c.ends, so they always fit the part
			panic(fmt.Errorf("internal error: %w", err))
		}
		parts = append(parts, view)
	}
	return Concat(parts...)
}

func (c *concat[T]) String() string {
	var result []string
	for _, part := range c.parts {
		result = append(result, fmt.Sprintf("%v", part))
	}
	return fmt.Sprintf("Concat(%s)", strings.Join(result, ", "))
}
