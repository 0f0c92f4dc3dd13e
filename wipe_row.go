package clipfunc

import (
	"context"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/xaionaro-go/clipfunc/logger"
	"github.com/xaionaro-go/clipfunc/sequence"
	"github.com/xaionaro-go/clipfunc/types"
	"golang.org/x/image/draw"
)

type WipeRowConfig struct {
	// Rows are the areas to wipe, relative to the top-left corner of the
	// frame. Overlapping areas are merged. Defaults to the single
	// top-left pixel.
	Rows []image.Rectangle

	// ShowMask makes WipeRow return the mask (white where wiped) instead
	// of the wiped clip.
	ShowMask bool
}

func (cfg WipeRowConfig) rows() []image.Rectangle {
	if len(cfg.Rows) == 0 {
		return []image.Rectangle{image.Rect(0, 0, 1, 1)}
	}
	return cfg.Rows
}

// WipeRow replaces the configured rows of every frame of clip with the
// same area of the matching secondary frame, or with black if secondary
// is nil.
func WipeRow(
	ctx context.Context,
	clip sequence.Sequence[image.Image],
	secondary sequence.Sequence[image.Image],
	cfg WipeRowConfig,
) (_ret sequence.Sequence[image.Image], _err error) {
	logger.Tracef(ctx, "WipeRow(%d rows)", len(cfg.Rows))
	defer func() { logger.Tracef(ctx, "/WipeRow(%d rows): %v", len(cfg.Rows), _err) }()

	rows := cfg.rows()
	for _, r := range rows {
		if r.Empty() {
			return nil, types.ErrInvalidConfig{
				Func:   "wipe_row",
				Reason: fmt.Sprintf("the row %v is empty", r),
			}
		}
	}
	if secondary != nil && secondary.Len() < clip.Len() {
		return nil, types.ErrInvalidConfig{
			Func:   "wipe_row",
			Reason: fmt.Sprintf("the secondary clip is shorter than the input clip: %d < %d", secondary.Len(), clip.Len()),
		}
	}

	if cfg.ShowMask {
		return sequence.Map(clip, func(_ context.Context, _ int, frame image.Image) (image.Image, error) {
			return rowMask(frame.Bounds(), rows), nil
		}), nil
	}

	return sequence.Map(clip, func(ctx context.Context, n int, frame image.Image) (image.Image, error) {
		var src image.Image = image.Black
		if secondary != nil {
			var err error
			src, err = secondary.Get(ctx, n)
			if err != nil {
				return nil, fmt.Errorf("unable to get the secondary frame #%d: %w", n, err)
			}
		}

		out := clone.AsRGBA(frame)
		for _, r := range rows {
			draw.Draw(out, r.Add(out.Bounds().Min), src, r.Min.Add(src.Bounds().Min), draw.Src)
		}
		return out, nil
	}), nil
}

func rowMask(bounds image.Rectangle, rows []image.Rectangle) *image.Gray {
	mask := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for _, r := range rows {
		draw.Draw(mask, r, image.White, image.Point{}, draw.Src)
	}
	return mask
}
