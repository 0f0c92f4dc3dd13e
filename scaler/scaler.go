// Package scaler resizes frames of clips with the kernels commonly used
// for video (bicubic with arbitrary b/c, lanczos with arbitrary taps,
// splines).
package scaler

import (
	"context"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/transform"
	"github.com/xaionaro-go/clipfunc/logger"
	"github.com/xaionaro-go/clipfunc/sequence"
)

type Scaler struct {
	Width  int
	Height int
	Filter transform.ResampleFilter
	Kernel string
}

func New(
	width, height int,
	kernel string,
	params Params,
) (*Scaler, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid destination resolution %dx%d", width, height)
	}
	filter, err := GetFilter(kernel, params)
	if err != nil {
		return nil, err
	}
	return &Scaler{
		Width:  width,
		Height: height,
		Filter: filter,
		Kernel: kernel,
	}, nil
}

func (s *Scaler) String() string {
	return fmt.Sprintf("Scaler(%s -> %dx%d)", s.Kernel, s.Width, s.Height)
}

// ScaleFrame returns src resized to the destination resolution; if it
// already has that resolution, src is returned as is.
func (s *Scaler) ScaleFrame(src image.Image) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() == s.Width && bounds.Dy() == s.Height {
		return src
	}
	return transform.Resize(src, s.Width, s.Height, s.Filter)
}

// Scale returns a clip with every frame resized on demand.
func (s *Scaler) Scale(
	clip sequence.Sequence[image.Image],
) sequence.Sequence[image.Image] {
	return sequence.Map(clip, func(ctx context.Context, n int, frame image.Image) (image.Image, error) {
		if frame == nil {
			return nil, fmt.Errorf("frame #%d is nil", n)
		}
		logger.Tracef(ctx, "%s: frame #%d", s, n)
		return s.ScaleFrame(frame), nil
	})
}
