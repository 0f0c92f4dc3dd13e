package main

import (
	"context"
	"fmt"
	"os"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/pkg/runtime"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/clipfunc/logger"
	"github.com/xaionaro-go/clipfunc/source"
	"github.com/xaionaro-go/clipfunc/types"
	"github.com/xaionaro-go/observability"
)

const (
	cmdReplaceRanges       = "replace-ranges"
	cmdLimitDark           = "limit-dark"
	cmdFramesSinceBookmark = "frames-since-bookmark"
)

func usage() {
	fmt.Fprintf(os.Stderr, "syntax:\n")
	fmt.Fprintf(os.Stderr, "  %s %s --ranges '[a b] c' <base-dir> <replacement-dir> <output-dir>\n", os.Args[0], cmdReplaceRanges)
	fmt.Fprintf(os.Stderr, "  %s %s [--threshold X] [--threshold-range Y] [--blur R] <input-dir> <output-dir>\n", os.Args[0], cmdLimitDark)
	fmt.Fprintf(os.Stderr, "  %s %s <bookmarks-file> <frame>...\n", os.Args[0], cmdFramesSinceBookmark)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]

	flags := pflag.NewFlagSet(cmd, pflag.ExitOnError)
	flags.Usage = usage
	loggerLevel := logger.LevelWarning
	flags.Var(&loggerLevel, "log-level", "Log level")
	var fps types.Rational
	flags.Var(&fps, "fps", "the frame rate to assume for image sequences (e.g. '24000/1001' or '~23.976')")

	var (
		ranges         types.Ranges
		threshold      *float64
		thresholdRange *float64
		blurRadius     *float64
		expectedArgs   int
	)
	switch cmd {
	case cmdReplaceRanges:
		flags.Var(&ranges, "ranges", "frame ranges to replace: '[start end]' for inclusive spans, 'n' for single frames; may be repeated")
		expectedArgs = 3
	case cmdLimitDark:
		threshold = flags.Float64("threshold", 0.25, "frames with the average luma at or below the threshold are filtered")
		thresholdRange = flags.Float64("threshold-range", 0, "if set, only frames with the average luma within [threshold-range, threshold] are filtered")
		blurRadius = flags.Float64("blur", 1.5, "the radius of the gaussian blur used as the filtered clip")
		expectedArgs = 2
	case cmdFramesSinceBookmark:
		expectedArgs = -1
	default:
		usage()
		os.Exit(1)
	}
	if err := flags.Parse(os.Args[2:]); err != nil {
		usage()
		os.Exit(1)
	}
	args := flags.Args()
	switch {
	case expectedArgs >= 0 && len(args) != expectedArgs:
		usage()
		os.Exit(1)
	case expectedArgs < 0 && len(args) < 2:
		usage()
		os.Exit(1)
	}

	runtime.DefaultCallerPCFilter = observability.CallerPCFilter(runtime.DefaultCallerPCFilter)
	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.SetDefault(func() logger.Logger {
		return l
	})
	defer belt.Flush(ctx)

	backends := source.Backends{
		source.KindImage:         source.ImageBackend{FPS: fps},
		source.KindImageSequence: source.ImageSequenceBackend{FPS: fps},
	}

	var err error
	switch cmd {
	case cmdReplaceRanges:
		err = replaceRanges(ctx, backends, ranges, args[0], args[1], args[2])
	case cmdLimitDark:
		if !flags.Changed("threshold-range") {
			thresholdRange = nil
		}
		err = limitDark(ctx, backends, threshold, thresholdRange, *blurRadius, args[0], args[1])
	case cmdFramesSinceBookmark:
		err = framesSinceBookmark(ctx, args[0], args[1:])
	}
	if err != nil {
		l.Fatal(err)
	}
}
