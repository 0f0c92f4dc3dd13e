package clipfunc

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/clipfunc/bookmark"
	"github.com/xaionaro-go/clipfunc/sequence"
)

// BookmarkedFrame is a frame annotated with its position relative to
// the latest bookmark.
type BookmarkedFrame[T any] struct {
	Frame       T
	Bookmark    int
	FramesSince int
}

func (f BookmarkedFrame[T]) String() string {
	return fmt.Sprintf("%d (+%d)", f.Bookmark, f.FramesSince)
}

// FramesSinceBookmark lazily annotates every frame of clip with the
// amount of frames elapsed since the latest bookmark, which makes
// scene filtering reusable across episodes. Use bookmark.Load to read
// VSEdit bookmarks.
func FramesSinceBookmark[T any](
	clip sequence.Sequence[T],
	bookmarks bookmark.Bookmarks,
) sequence.Sequence[BookmarkedFrame[T]] {
	bookmarks = bookmarks.Normalize()
	return sequence.Map(clip, func(ctx context.Context, n int, frame T) (BookmarkedFrame[T], error) {
		b, err := bookmarks.Latest(n)
		if err != nil {
			return BookmarkedFrame[T]{}, err
		}
		return BookmarkedFrame[T]{
			Frame:       frame,
			Bookmark:    b,
			FramesSince: n - b,
		}, nil
	})
}
