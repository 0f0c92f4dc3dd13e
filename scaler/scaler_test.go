package scaler

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/clipfunc/sequence"
	"github.com/xaionaro-go/clipfunc/types"
)

func TestGetFilter(t *testing.T) {
	for _, kernel := range []string{"point", "Bilinear", "BICUBIC", "lanczos", "spline16", "spline36", "spline64"} {
		t.Run(kernel, func(t *testing.T) {
			filter, err := GetFilter(kernel, Params{})
			require.NoError(t, err)
			if kernel == "point" {
				// bild resizes with nearest neighbour when Support is not positive
				require.Zero(t, filter.Support)
				return
			}
			require.NotNil(t, filter.Fn)
			require.InDelta(t, 1, filter.Fn(0), 1e-9)
			require.InDelta(t, 0, filter.Fn(filter.Support), 1e-9)
			require.InDelta(t, filter.Fn(0.3), filter.Fn(-0.3), 1e-9)
		})
	}

	_, err := GetFilter("spline100", Params{})
	var errConfig types.ErrInvalidConfig
	require.True(t, errors.As(err, &errConfig))

	_, err = GetFilter("lanczos", Params{Taps: types.Ptr(0)})
	require.True(t, errors.As(err, &errConfig))
}

func TestInterpolatingKernelsPassThroughIntegers(t *testing.T) {
	for name, filter := range map[string]func() (float64, float64){
		"spline16": func() (float64, float64) { return Spline16.Fn(1), Spline16.Fn(-1) },
		"spline36": func() (float64, float64) { return Spline36.Fn(1), Spline36.Fn(2) },
		"spline64": func() (float64, float64) { return Spline64.Fn(1), Spline64.Fn(3) },
		"lanczos":  func() (float64, float64) { return Lanczos(3).Fn(1), Lanczos(3).Fn(2) },
		"catmull":  func() (float64, float64) { return Bicubic(0, 0.5).Fn(1), Bicubic(0, 0.5).Fn(2) },
	} {
		a, b := filter()
		require.InDelta(t, 0, a, 1e-9, name)
		require.InDelta(t, 0, b, 1e-9, name)
	}
}

func TestBicubicParams(t *testing.T) {
	filter, err := GetFilter("bicubic", Params{B: types.Ptr(1.0 / 3), C: types.Ptr(1.0 / 3)})
	require.NoError(t, err)
	// Mitchell-Netravali is not interpolating: k(0) = (6-2b)/6
	require.InDelta(t, 8.0/9, filter.Fn(0), 1e-9)
}

func TestScale(t *testing.T) {
	s, err := New(4, 2, "bilinear", Params{})
	require.NoError(t, err)

	src := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for i := range src.Pix {
		src.Pix[i] = 200
	}
	same := image.NewRGBA(image.Rect(0, 0, 4, 2))

	out := s.Scale(sequence.Slice[image.Image]{src, same, nil})
	require.Equal(t, 3, out.Len())

	ctx := context.Background()
	frame, err := out.Get(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 4, 2), frame.Bounds())
	c := color.RGBAModel.Convert(frame.At(1, 1)).(color.RGBA)
	require.InDelta(t, 200, int(c.R), 1)
	require.InDelta(t, 200, int(c.A), 1)

	frame, err = out.Get(ctx, 1)
	require.NoError(t, err)
	require.Same(t, same, frame)

	_, err = out.Get(ctx, 2)
	require.Error(t, err)

	_, err = New(0, 2, "bilinear", Params{})
	require.Error(t, err)
	_, err = New(4, 2, "unknown", Params{})
	require.Error(t, err)
}

func TestScaleFramePoint(t *testing.T) {
	s, err := New(4, 4, "Point", Params{})
	require.NoError(t, err)

	palette := []color.RGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
	}
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, palette[0])
	src.SetRGBA(1, 0, palette[1])
	src.SetRGBA(0, 1, palette[2])
	src.SetRGBA(1, 1, palette[3])

	frame := s.ScaleFrame(src)
	require.Equal(t, image.Rect(0, 0, 4, 4), frame.Bounds())

	at := func(x, y int) color.RGBA {
		return color.RGBAModel.Convert(frame.At(x, y)).(color.RGBA)
	}
	require.Equal(t, palette[0], at(0, 0))
	require.Equal(t, palette[1], at(3, 0))
	require.Equal(t, palette[2], at(0, 3))
	require.Equal(t, palette[3], at(3, 3))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			require.Contains(t, palette, at(x, y), "(%d,%d) is blended", x, y)
		}
	}
}
