package source

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/clipfunc/clip"
)

// Kind is the kind of decoding backend a file requires.
type Kind int

const (
	KindUndefined = Kind(iota)
	KindFFMS2
	KindLSMASH
	KindD2V
	KindDGI
	KindImage
	KindImageSequence
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindFFMS2:
		return "ffms2"
	case KindLSMASH:
		return "lsmas"
	case KindD2V:
		return "d2vsource"
	case KindDGI:
		return "dgdecodenv"
	case KindImage:
		return "imwri"
	case KindImageSequence:
		return "image_sequence"
	}
	return fmt.Sprintf("unknown_kind_%d", int(k))
}

// Backend decodes a file into a clip.
type Backend interface {
	fmt.Stringer
	Open(ctx context.Context, path string) (*clip.Clip, error)
}

// Backends maps each kind to its implementation. A kind missing from the
// map is reported as an unavailable dependency when a file needs it.
type Backends map[Kind]Backend

// DefaultBackends returns the backends implemented in this package.
func DefaultBackends() Backends {
	return Backends{
		KindImage:         ImageBackend{},
		KindImageSequence: ImageSequenceBackend{},
	}
}

// PlaylistReader lists the stream files of a Blu-ray playlist.
type PlaylistReader interface {
	ReadPlaylist(ctx context.Context, path string, playlist, angle int) ([]string, error)
}

// PlaylistReaderFunc is a PlaylistReader implemented by a function.
type PlaylistReaderFunc func(ctx context.Context, path string, playlist, angle int) ([]string, error)

func (fn PlaylistReaderFunc) ReadPlaylist(ctx context.Context, path string, playlist, angle int) ([]string, error) {
	return fn(ctx, path, playlist, angle)
}
