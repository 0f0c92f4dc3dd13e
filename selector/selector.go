// Package selector picks, frame by frame, one of two clips depending on
// a per-frame metric compared against thresholds.
package selector

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/clipfunc/logger"
	"github.com/xaionaro-go/clipfunc/math/condition"
	"github.com/xaionaro-go/clipfunc/sequence"
	"github.com/xaionaro-go/clipfunc/types"
	"golang.org/x/exp/constraints"
)

type Choice int

const (
	ChoicePrimary = Choice(iota)
	ChoiceSecondary
)

func (c Choice) String() string {
	switch c {
	case ChoicePrimary:
		return "primary"
	case ChoiceSecondary:
		return "secondary"
	}
	return fmt.Sprintf("unknown_choice_%d", int(c))
}

// Selector decides which clip a frame is taken from.
//
// Without a threshold range the secondary clip is picked unless the
// metric is greater than the threshold. With a threshold range the
// secondary clip is picked only when the metric is within
// [thresholdRange, threshold].
type Selector[M constraints.Float] struct {
	Threshold      M
	ThresholdRange *M

	pickSecondary condition.Condition[M]
}

// New validates the thresholds; thresholdRange is the lower bound and may
// not be greater than threshold.
func New[M constraints.Float](
	threshold M,
	thresholdRange *M,
) (*Selector[M], error) {
	s := &Selector[M]{
		Threshold:      threshold,
		ThresholdRange: thresholdRange,
	}
	if thresholdRange == nil {
		s.pickSecondary = condition.Not[M]{condition.Greater(threshold)}
		return s, nil
	}

	if *thresholdRange > threshold {
		return nil, types.ErrInvalidConfig{
			Func:   "selector",
			Reason: fmt.Sprintf("\"threshold_range\" (%v) must be a lower value than \"threshold\" (%v)", *thresholdRange, threshold),
		}
	}
	s.pickSecondary = condition.And[M]{
		condition.GreaterOrEqual(*thresholdRange),
		condition.LessOrEqual(threshold),
	}
	return s, nil
}

func (s *Selector[M]) String() string {
	return fmt.Sprintf("Selector(secondary if %s)", s.pickSecondary)
}

func (s *Selector[M]) Choose(ctx context.Context, metric M) Choice {
	if s.pickSecondary.Match(ctx, metric) {
		return ChoiceSecondary
	}
	return ChoicePrimary
}

// Apply returns a lazy clip of primary's length. Frame n reads metrics[n]
// and the picked clip's frame n only when frame n is requested.
func Apply[T any, M constraints.Float](
	s *Selector[M],
	primary sequence.Sequence[T],
	secondary sequence.Sequence[T],
	metrics sequence.Sequence[M],
) sequence.Sequence[T] {
	return sequence.Eval(primary.Len(), func(ctx context.Context, n int) (sequence.Sequence[T], error) {
		metric, err := metrics.Get(ctx, n)
		if err != nil {
			return nil, fmt.Errorf("unable to get the metric of frame #%d: %w", n, err)
		}
		choice := s.Choose(ctx, metric)
		logger.Tracef(ctx, "frame #%d: metric %v: %s", n, metric, choice)
		if choice == ChoiceSecondary {
			return secondary, nil
		}
		return primary, nil
	})
}

// Select is New followed by Apply.
func Select[T any, M constraints.Float](
	primary sequence.Sequence[T],
	secondary sequence.Sequence[T],
	metrics sequence.Sequence[M],
	threshold M,
	thresholdRange *M,
) (sequence.Sequence[T], error) {
	s, err := New(threshold, thresholdRange)
	if err != nil {
		return nil, err
	}
	return Apply(s, primary, secondary, metrics), nil
}
