package metrics

import (
	"context"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/xaionaro-go/clipfunc/logger"
	"github.com/xaionaro-go/clipfunc/sequence"
)

// PlaneStatsAverage is the average luma of a frame normalized to [0, 1]:
// 0 is a black frame, 1 is a white one.
type PlaneStatsAverage struct{}

var _ Provider[image.Image] = PlaneStatsAverage{}

func (PlaneStatsAverage) String() string {
	return "PlaneStatsAverage"
}

func (p PlaneStatsAverage) Metrics(clip sequence.Sequence[image.Image]) sequence.Sequence[float64] {
	return sequence.Map(clip, func(ctx context.Context, n int, frame image.Image) (float64, error) {
		if frame == nil {
			return 0, fmt.Errorf("frame #%d is nil", n)
		}
		avg := AverageLuma(frame)
		logger.Tracef(ctx, "frame #%d: PlaneStatsAverage: %v", n, avg)
		return avg, nil
	})
}

// AverageLuma returns the average luma of img normalized to [0, 1]. An
// empty image yields 0.
func AverageLuma(img image.Image) float64 {
	bounds := img.Bounds()
	if bounds.Empty() {
		return 0
	}

	gray := effect.Grayscale(img)
	var sum uint64
	for y := 0; y < gray.Rect.Dy(); y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+gray.Rect.Dx()*4]
		for x := 0; x < len(row); x += 4 {
			sum += uint64(row[x])
		}
	}
	count := uint64(bounds.Dx()) * uint64(bounds.Dy())
	return float64(sum) / float64(count) / 255
}
