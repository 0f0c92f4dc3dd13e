package selector

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/clipfunc/sequence"
	"github.com/xaionaro-go/clipfunc/types"
)

func TestChoose(t *testing.T) {
	ctx := context.Background()

	t.Run("threshold", func(t *testing.T) {
		s, err := New(0.25, nil)
		require.NoError(t, err)
		var choices []Choice
		for _, metric := range []float64{0.1, 0.5, 0.9} {
			choices = append(choices, s.Choose(ctx, metric))
		}
		require.Equal(t, []Choice{ChoiceSecondary, ChoicePrimary, ChoicePrimary}, choices)
		require.Equal(t, ChoiceSecondary, s.Choose(ctx, 0.25))
		require.Equal(t, ChoiceSecondary, s.Choose(ctx, math.NaN()))
	})

	t.Run("threshold-range", func(t *testing.T) {
		s, err := New(0.5, types.Ptr(0.2))
		require.NoError(t, err)
		require.Equal(t, ChoicePrimary, s.Choose(ctx, 0.1))
		require.Equal(t, ChoiceSecondary, s.Choose(ctx, 0.2))
		require.Equal(t, ChoiceSecondary, s.Choose(ctx, 0.35))
		require.Equal(t, ChoiceSecondary, s.Choose(ctx, 0.5))
		require.Equal(t, ChoicePrimary, s.Choose(ctx, 0.6))
		require.Equal(t, ChoicePrimary, s.Choose(ctx, math.NaN()))
	})

	t.Run("zero-threshold-range-is-a-range", func(t *testing.T) {
		s, err := New(0.5, types.Ptr(0.0))
		require.NoError(t, err)
		require.Equal(t, ChoicePrimary, s.Choose(ctx, 0.7))
		require.Equal(t, ChoiceSecondary, s.Choose(ctx, 0.0))
	})

	t.Run("equal-bounds", func(t *testing.T) {
		s, err := New(float32(0.5), types.Ptr(float32(0.5)))
		require.NoError(t, err)
		require.Equal(t, ChoiceSecondary, s.Choose(ctx, 0.5))
		require.Equal(t, ChoicePrimary, s.Choose(ctx, 0.4))
	})
}

func TestNewInvalidThresholdRange(t *testing.T) {
	_, err := New(0.5, types.Ptr(0.6))
	var errConfig types.ErrInvalidConfig
	require.True(t, errors.As(err, &errConfig))
	require.Contains(t, err.Error(), "threshold_range")
}

func TestSelect(t *testing.T) {
	ctx := context.Background()
	primary := sequence.Slice[string]{"p0", "p1", "p2"}
	secondary := sequence.Slice[string]{"s0", "s1", "s2"}

	var evaluated []int
	metrics := sequence.Func(3, func(_ context.Context, n int) (float64, error) {
		evaluated = append(evaluated, n)
		return []float64{0.1, 0.5, 0.9}[n], nil
	})

	out, err := Select[string, float64](primary, secondary, metrics, 0.25, nil)
	require.NoError(t, err)
	require.Equal(t, 3, out.Len())
	require.Empty(t, evaluated)

	v, err := out.Get(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "p2", v)
	require.Equal(t, []int{2}, evaluated)

	all, err := sequence.Collect(ctx, out)
	require.NoError(t, err)
	require.Equal(t, []string{"s0", "p1", "p2"}, all)

	// re-requesting is idempotent
	v, err = out.Get(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, "s0", v)
}

func TestSelectFailsBeforeEvaluation(t *testing.T) {
	evaluated := false
	metrics := sequence.Func(1, func(context.Context, int) (float64, error) {
		evaluated = true
		return 0, nil
	})
	_, err := Select[int, float64](sequence.Slice[int]{1}, sequence.Slice[int]{2}, metrics, 0.5, types.Ptr(0.6))
	require.Error(t, err)
	require.False(t, evaluated)
}

func TestSelectMetricError(t *testing.T) {
	errBoom := errors.New("boom")
	metrics := sequence.Func(1, func(context.Context, int) (float64, error) {
		return 0, errBoom
	})
	out, err := Select[int, float64](sequence.Slice[int]{1}, sequence.Slice[int]{2}, metrics, 0.5, nil)
	require.NoError(t, err)
	_, err = out.Get(context.Background(), 0)
	require.ErrorIs(t, err, errBoom)
}
