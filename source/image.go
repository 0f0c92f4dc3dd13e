package source

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/xaionaro-go/clipfunc/clip"
	"github.com/xaionaro-go/clipfunc/logger"
	"github.com/xaionaro-go/clipfunc/sequence"
	"github.com/xaionaro-go/clipfunc/types"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var imageExtensions = []string{
	".bmp",
	".gif",
	".jpeg",
	".jpg",
	".png",
	".tif",
	".tiff",
	".webp",
}

// IsImage reports whether the file is a still image, judging by its
// extension.
func IsImage(path string) bool {
	return slices.Contains(imageExtensions, strings.ToLower(filepath.Ext(path)))
}

// ImageBackend opens a still image as a single-frame clip.
type ImageBackend struct {
	FPS types.Rational
}

var _ Backend = ImageBackend{}

func (ImageBackend) String() string {
	return "ImageBackend"
}

func (b ImageBackend) Open(ctx context.Context, path string) (*clip.Clip, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open image '%s': %w", path, err)
	}
	bounds := img.Bounds()
	return clip.New(sequence.Slice[image.Image]{img}, clip.Info{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		FPS:    b.FPS,
	}), nil
}

// ImageSequenceBackend opens a directory of still images (one image per
// frame, ordered by file name) as a clip. Frames are decoded on demand.
type ImageSequenceBackend struct {
	FPS types.Rational
}

var _ Backend = ImageSequenceBackend{}

func (ImageSequenceBackend) String() string {
	return "ImageSequenceBackend"
}

func (b ImageSequenceBackend) Open(ctx context.Context, dir string) (*clip.Clip, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to list directory '%s': %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !IsImage(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no images found in '%s'", dir)
	}
	logger.Debugf(ctx, "found %d frames in '%s'", len(paths), dir)

	first, err := imgio.Open(paths[0])
	if err != nil {
		return nil, fmt.Errorf("unable to open the first frame '%s': %w", paths[0], err)
	}
	bounds := first.Bounds()

	frames := sequence.Func(len(paths), func(ctx context.Context, n int) (image.Image, error) {
		logger.Tracef(ctx, "decoding frame #%d: '%s'", n, paths[n])
		img, err := imgio.Open(paths[n])
		if err != nil {
			return nil, fmt.Errorf("unable to open frame #%d '%s': %w", n, paths[n], err)
		}
		return img, nil
	})
	return clip.New(frames, clip.Info{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		FPS:    b.FPS,
	}), nil
}

// WriteImageSequence encodes every frame of the clip into dir as a PNG
// file named by the frame number. It returns the amount of written bytes.
func WriteImageSequence(
	ctx context.Context,
	dir string,
	frames sequence.Sequence[image.Image],
) (_ret int64, _err error) {
	logger.Debugf(ctx, "WriteImageSequence(ctx, '%s', %d frames)", dir, frames.Len())
	defer func() { logger.Debugf(ctx, "/WriteImageSequence(ctx, '%s'): %d %v", dir, _ret, _err) }()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("unable to create directory '%s': %w", dir, err)
	}

	var total int64
	for n := range frames.Len() {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		img, err := frames.Get(ctx, n)
		if err != nil {
			return total, fmt.Errorf("unable to get frame #%d: %w", n, err)
		}
		path := filepath.Join(dir, fmt.Sprintf("%06d.png", n))
		if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
			return total, fmt.Errorf("unable to save frame #%d to '%s': %w", n, path, err)
		}
		stat, err := os.Stat(path)
		if err != nil {
			return total, fmt.Errorf("unable to stat '%s': %w", path, err)
		}
		total += stat.Size()
	}
	return total, nil
}
