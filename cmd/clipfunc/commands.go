package main

import (
	"context"
	"fmt"
	"image"
	"strconv"

	"github.com/anthonynsimon/bild/blur"
	"github.com/dustin/go-humanize"
	"github.com/xaionaro-go/clipfunc"
	"github.com/xaionaro-go/clipfunc/bookmark"
	"github.com/xaionaro-go/clipfunc/logger"
	"github.com/xaionaro-go/clipfunc/metrics"
	"github.com/xaionaro-go/clipfunc/sequence"
	"github.com/xaionaro-go/clipfunc/source"
	"github.com/xaionaro-go/clipfunc/types"
)

func replaceRanges(
	ctx context.Context,
	backends source.Backends,
	ranges types.Ranges,
	basePath, replacementPath, outputPath string,
) error {
	base, err := source.Source(ctx, basePath, backends, source.Options{})
	if err != nil {
		return fmt.Errorf("unable to open the base clip: %w", err)
	}
	replacement, err := source.Source(ctx, replacementPath, backends, source.Options{Ref: base})
	if err != nil {
		return fmt.Errorf("unable to open the replacement clip: %w", err)
	}
	if replacement.Len() != base.Len() {
		logger.Warnf(ctx, "the replacement clip has %d frames, while the base clip has %d", replacement.Len(), base.Len())
	}

	out, err := clipfunc.ReplaceRanges[image.Image](ctx, base, replacement, ranges)
	if err != nil {
		return err
	}
	return write(ctx, outputPath, out)
}

func limitDark(
	ctx context.Context,
	backends source.Backends,
	threshold *float64,
	thresholdRange *float64,
	blurRadius float64,
	inputPath, outputPath string,
) error {
	input, err := source.Source(ctx, inputPath, backends, source.Options{})
	if err != nil {
		return fmt.Errorf("unable to open the input clip: %w", err)
	}

	filtered := sequence.Map[image.Image, image.Image](input, func(_ context.Context, _ int, frame image.Image) (image.Image, error) {
		return blur.Gaussian(frame, blurRadius), nil
	})
	out, err := clipfunc.LimitDark[image.Image](ctx, input, filtered, metrics.PlaneStatsAverage{}, clipfunc.LimitDarkConfig{
		Threshold:      threshold,
		ThresholdRange: thresholdRange,
	})
	if err != nil {
		return err
	}
	return write(ctx, outputPath, out)
}

func framesSinceBookmark(
	ctx context.Context,
	bookmarksPath string,
	frames []string,
) error {
	bookmarks, err := bookmark.Load(bookmarksPath)
	if err != nil {
		return err
	}
	logger.Debugf(ctx, "bookmarks: %s", bookmarks)

	for _, s := range frames {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("unable to parse frame number %q: %w", s, err)
		}
		b, err := bookmarks.Latest(n)
		if err != nil {
			return err
		}
		fmt.Printf("%d\t%d\t+%d\n", n, b, n-b)
	}
	return nil
}

func write(
	ctx context.Context,
	outputPath string,
	out sequence.Sequence[image.Image],
) error {
	size, err := source.WriteImageSequence(ctx, outputPath, out)
	if err != nil {
		return fmt.Errorf("unable to write the output to '%s': %w", outputPath, err)
	}
	fmt.Printf("written %s frames (%s) to '%s'\n", humanize.Comma(int64(out.Len())), humanize.Bytes(uint64(size)), outputPath)
	return nil
}
