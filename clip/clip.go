// Package clip defines a video clip: a lazily decoded sequence of frames
// with its format metadata.
package clip

import (
	"fmt"
	"image"

	"github.com/xaionaro-go/clipfunc/sequence"
	"github.com/xaionaro-go/clipfunc/types"
)

type Info struct {
	Width  int
	Height int

	// FPS is zero if unknown (e.g. for still images).
	FPS types.Rational
}

func (i Info) String() string {
	return fmt.Sprintf("%dx%d@%s", i.Width, i.Height, i.FPS)
}

type Clip struct {
	sequence.Sequence[image.Image]
	Info Info
}

func New(frames sequence.Sequence[image.Image], info Info) *Clip {
	return &Clip{
		Sequence: frames,
		Info:     info,
	}
}

// WithFrames returns a clip with the same metadata and other frames.
func (c *Clip) WithFrames(frames sequence.Sequence[image.Image]) *Clip {
	return New(frames, c.Info)
}

func (c *Clip) String() string {
	return fmt.Sprintf("Clip(%s, %d frames)", c.Info, c.Len())
}
