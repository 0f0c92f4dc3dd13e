package clip

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/clipfunc/sequence"
	"github.com/xaionaro-go/clipfunc/types"
)

func TestClip(t *testing.T) {
	frames := sequence.Slice[image.Image]{image.NewGray(image.Rect(0, 0, 4, 2))}
	c := New(frames, Info{Width: 4, Height: 2, FPS: types.Rational{Num: 24000, Den: 1001}})
	require.Equal(t, 1, c.Len())
	require.Equal(t, "Clip(4x2@24000/1001, 1 frames)", c.String())

	other := c.WithFrames(sequence.Repeat[image.Image](frames[0], 3))
	require.Equal(t, 3, other.Len())
	require.Equal(t, c.Info, other.Info)
}
