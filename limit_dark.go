package clipfunc

import (
	"context"

	"github.com/xaionaro-go/clipfunc/logger"
	"github.com/xaionaro-go/clipfunc/metrics"
	"github.com/xaionaro-go/clipfunc/selector"
	"github.com/xaionaro-go/clipfunc/sequence"
)

const DefaultLimitDarkThreshold = 0.25

type LimitDarkConfig struct {
	// Threshold is the frame average below which (inclusively) the
	// filtered frame is used. Nil means DefaultLimitDarkThreshold.
	Threshold *float64

	// ThresholdRange, if set, restricts the filtered frames to those
	// with the average within [ThresholdRange, Threshold].
	ThresholdRange *float64
}

func (cfg LimitDarkConfig) threshold() float64 {
	if cfg.Threshold == nil {
		return DefaultLimitDarkThreshold
	}
	return *cfg.Threshold
}

// LimitDark replaces frames of clip with the frames of filtered when the
// frame is dark enough according to stats. This way one can run lighter
// (or heavier) filtering on scenes that are almost entirely dark.
//
// Each frame is decided on its own, so a scene may end up with every
// other frame filtered.
func LimitDark[T any](
	ctx context.Context,
	clip sequence.Sequence[T],
	filtered sequence.Sequence[T],
	stats metrics.Provider[T],
	cfg LimitDarkConfig,
) (sequence.Sequence[T], error) {
	s, err := selector.New(cfg.threshold(), cfg.ThresholdRange)
	if err != nil {
		return nil, err
	}
	logger.Debugf(ctx, "LimitDark: %s, stats: %s", s, stats)
	return selector.Apply(s, clip, filtered, stats.Metrics(clip)), nil
}
