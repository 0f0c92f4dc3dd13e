// Package metrics provides per-frame scalar statistics of clips.
package metrics

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/clipfunc/sequence"
)

// Provider computes a sequence of metrics parallel to the given clip.
// The returned sequence has the same length as the clip.
type Provider[T any] interface {
	fmt.Stringer
	Metrics(clip sequence.Sequence[T]) sequence.Sequence[float64]
}

// ProviderFunc computes the metric of a single frame; it is evaluated
// lazily, once per requested frame.
type ProviderFunc[T any] func(ctx context.Context, n int, frame T) (float64, error)

var _ Provider[int] = (ProviderFunc[int])(nil)

func (fn ProviderFunc[T]) String() string {
	return fmt.Sprintf("<custom_metric:%p>", fn)
}

func (fn ProviderFunc[T]) Metrics(clip sequence.Sequence[T]) sequence.Sequence[float64] {
	return sequence.Map(clip, func(ctx context.Context, n int, frame T) (float64, error) {
		return fn(ctx, n, frame)
	})
}

// Precomputed is a Provider of metrics computed elsewhere (for example
// loaded from a stats file).
type Precomputed[T any] []float64

var _ Provider[int] = (Precomputed[int])(nil)

func (p Precomputed[T]) String() string {
	return fmt.Sprintf("Precomputed(%d)", len(p))
}

func (p Precomputed[T]) Metrics(sequence.Sequence[T]) sequence.Sequence[float64] {
	return sequence.Slice[float64](p)
}
