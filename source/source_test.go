package source

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/clipfunc/clip"
	"github.com/xaionaro-go/clipfunc/sequence"
	"github.com/xaionaro-go/clipfunc/types"
)

func writePNG(t *testing.T, path string, w, h int, y uint8) {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = y
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

type fakeBackend struct {
	name   string
	frames int
	opened []string
}

func (b *fakeBackend) String() string {
	return b.name
}

func (b *fakeBackend) Open(_ context.Context, path string) (*clip.Clip, error) {
	b.opened = append(b.opened, path)
	var frames sequence.Slice[image.Image]
	for range b.frames {
		frames = append(frames, image.NewGray(image.Rect(0, 0, 8, 6)))
	}
	return clip.New(frames, clip.Info{Width: 8, Height: 6, FPS: types.Rational{Num: 25, Den: 1}}), nil
}

func TestDetectKind(t *testing.T) {
	dir := t.TempDir()
	for path, kind := range map[string]Kind{
		"episode.mkv":  KindFFMS2,
		"episode.mp4":  KindFFMS2,
		"00000.m2ts":   KindLSMASH,
		"00000.M2TS":   KindLSMASH,
		"index.d2v":    KindD2V,
		"index.dgi":    KindDGI,
		"cover.png":    KindImage,
		"cover.JPG":    KindImage,
		dir:            KindImageSequence,
		"missing-file": KindFFMS2,
	} {
		require.Equal(t, kind, DetectKind(path), path)
	}
}

func TestSourceRejects(t *testing.T) {
	ctx := context.Background()
	for _, path := range []string{"BDMV/PLAYLIST/00001.mpls", "VTS_01_1.VOB", "stream.ts"} {
		_, err := Source(ctx, path, DefaultBackends(), Options{})
		var errConfig types.ErrInvalidConfig
		require.True(t, errors.As(err, &errConfig), path)
	}
}

func TestSourceMissingBackend(t *testing.T) {
	ctx := context.Background()
	_, err := Source(ctx, "episode.mkv", DefaultBackends(), Options{})
	var errDep types.ErrDependencyUnavailable
	require.True(t, errors.As(err, &errDep))
	require.Equal(t, "ffms2", errDep.Dependency)

	_, err = Source(ctx, "BDMV", DefaultBackends(), Options{MPLS: true})
	require.True(t, errors.As(err, &errDep))
	require.Equal(t, "vapoursynth-readmpls", errDep.Dependency)
}

func TestSourceBackendSelection(t *testing.T) {
	ctx := context.Background()
	ffms2 := &fakeBackend{name: "ffms2", frames: 3}
	lsmash := &fakeBackend{name: "lsmash", frames: 2}
	backends := Backends{KindFFMS2: ffms2, KindLSMASH: lsmash}

	c, err := Source(ctx, "file:///videos/episode.mkv", backends, Options{})
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())
	require.Equal(t, []string{"/videos/episode.mkv"}, ffms2.opened)

	c, err = Source(ctx, "episode.mkv", backends, Options{ForceLSMASH: true})
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	c, err = Source(ctx, "/bd", backends, Options{
		MPLS:         true,
		MPLSPlaylist: 1,
		PlaylistReader: PlaylistReaderFunc(func(_ context.Context, path string, playlist, angle int) ([]string, error) {
			require.Equal(t, "/bd", path)
			require.Equal(t, 1, playlist)
			require.Zero(t, angle)
			return []string{"/bd/BDMV/STREAM/00001.m2ts", "/bd/BDMV/STREAM/00002.m2ts"}, nil
		}),
	})
	require.NoError(t, err)
	require.Equal(t, 4, c.Len())
	require.Equal(t, 8, c.Info.Width)
	require.Equal(t, []string{"episode.mkv", "/bd/BDMV/STREAM/00001.m2ts", "/bd/BDMV/STREAM/00002.m2ts"}, lsmash.opened)
}

func TestSourceImageWithRef(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "card.png")
	writePNG(t, path, 16, 12, 255)

	ref := &fakeBackend{name: "ref", frames: 5}
	refClip, err := ref.Open(ctx, "ref.mkv")
	require.NoError(t, err)

	c, err := Source(ctx, "file://"+path, DefaultBackends(), Options{Ref: refClip})
	require.NoError(t, err)
	require.Equal(t, 5, c.Len())
	require.Equal(t, refClip.Info, c.Info)

	frame, err := c.Get(ctx, 4)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 8, 6), frame.Bounds())

	_, err = Source(ctx, path, DefaultBackends(), Options{Ref: refClip, Kernel: "nope"})
	var errConfig types.ErrInvalidConfig
	require.True(t, errors.As(err, &errConfig))
}

func TestImageSequenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := t.TempDir()
	for n := range 3 {
		writePNG(t, filepath.Join(src, fmt.Sprintf("f%02d.png", n)), 4, 2, uint8(n*100))
	}
	require.NoError(t, os.WriteFile(filepath.Join(src, "notes.txt"), []byte("x"), 0o644))

	c, err := Source(ctx, src, DefaultBackends(), Options{})
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())
	require.Equal(t, 4, c.Info.Width)
	require.Equal(t, 2, c.Info.Height)

	dst := filepath.Join(t.TempDir(), "out")
	size, err := WriteImageSequence(ctx, dst, c)
	require.NoError(t, err)
	require.Positive(t, size)

	out, err := ImageSequenceBackend{}.Open(ctx, dst)
	require.NoError(t, err)
	require.Equal(t, 3, out.Len())
	frame, err := out.Get(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, color.Gray{Y: 200}, color.GrayModel.Convert(frame.At(1, 1)))

	_, err = ImageSequenceBackend{}.Open(ctx, t.TempDir())
	require.Error(t, err)
}
