// Package source opens files as clips, picking the decoding backend by
// the file type, and conforms them to a reference clip.
package source

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/xaionaro-go/clipfunc/clip"
	"github.com/xaionaro-go/clipfunc/logger"
	"github.com/xaionaro-go/clipfunc/scaler"
	"github.com/xaionaro-go/clipfunc/sequence"
	"github.com/xaionaro-go/clipfunc/types"
)

const funcName = "source"

type Options struct {
	// Ref is the clip to take the frame rate and the resolution from.
	// Still images are also repeated to the length of Ref.
	Ref *clip.Clip

	// Kernel and KernelParams define the resizer used to conform to Ref
	// (default: bicubic).
	Kernel       string
	KernelParams scaler.Params

	// ForceLSMASH makes any file be opened with the L-SMASH backend.
	ForceLSMASH bool

	// MPLS makes the path be treated as the base Blu-ray directory and
	// the playlist be read with PlaylistReader.
	MPLS           bool
	MPLSPlaylist   int
	MPLSAngle      int
	PlaylistReader PlaylistReader
}

// Source opens the file as a clip.
//
// The backend is chosen by the file: d2v and dgi index files, still
// images and directories of still images, m2ts (L-SMASH), and anything
// else (FFMS2). A backend that is required but not present in backends
// results in types.ErrDependencyUnavailable.
func Source(
	ctx context.Context,
	path string,
	backends Backends,
	opts Options,
) (_ret *clip.Clip, _err error) {
	logger.Debugf(ctx, "Source(ctx, '%s')", path)
	defer func() { logger.Debugf(ctx, "/Source(ctx, '%s'): %v %v", path, _ret, _err) }()

	path = strings.TrimPrefix(path, "file://")
	ext := strings.ToLower(filepath.Ext(path))

	switch {
	case ext == ".mpls" && !opts.MPLS:
		return nil, types.ErrInvalidConfig{
			Func:   funcName,
			Reason: "please set MPLS and give a path to the base Blu-ray directory when trying to load in mpls files",
		}
	case ext == ".vob" || ext == ".ts":
		return nil, types.ErrInvalidConfig{
			Func:   funcName,
			Reason: "please index VOB and TS files with d2v before importing them",
		}
	}

	var (
		c   *clip.Clip
		err error
	)
	switch {
	case opts.ForceLSMASH:
		c, err = open(ctx, backends, KindLSMASH, path)
	case opts.MPLS:
		c, err = openPlaylist(ctx, backends, path, opts)
	default:
		c, err = open(ctx, backends, DetectKind(path), path)
	}
	if err != nil {
		return nil, err
	}

	if opts.Ref != nil {
		c, err = conform(ctx, c, opts, IsImage(path))
		if err != nil {
			return nil, fmt.Errorf("unable to conform '%s' to the reference clip: %w", path, err)
		}
	}
	return c, nil
}

// DetectKind returns the backend kind required for the path.
func DetectKind(path string) Kind {
	switch ext := strings.ToLower(filepath.Ext(path)); {
	case ext == ".d2v":
		return KindD2V
	case ext == ".dgi":
		return KindDGI
	case IsImage(path):
		return KindImage
	case isDir(path):
		return KindImageSequence
	case ext == ".m2ts":
		return KindLSMASH
	}
	return KindFFMS2
}

func isDir(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && stat.IsDir()
}

func open(
	ctx context.Context,
	backends Backends,
	kind Kind,
	path string,
) (*clip.Clip, error) {
	backend, ok := backends[kind]
	if !ok || backend == nil {
		return nil, types.ErrDependencyUnavailable{
			Func:       funcName,
			Dependency: kind.String(),
		}
	}
	logger.Debugf(ctx, "opening '%s' with %s", path, backend)
	c, err := backend.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("unable to open '%s' with %s: %w", path, backend, err)
	}
	return c, nil
}

func openPlaylist(
	ctx context.Context,
	backends Backends,
	path string,
	opts Options,
) (*clip.Clip, error) {
	if opts.PlaylistReader == nil {
		return nil, types.ErrDependencyUnavailable{
			Func:       funcName,
			Dependency: "vapoursynth-readmpls",
		}
	}
	files, err := opts.PlaylistReader.ReadPlaylist(ctx, path, opts.MPLSPlaylist, opts.MPLSAngle)
	if err != nil {
		return nil, fmt.Errorf("unable to read playlist %d (angle %d) of '%s': %w", opts.MPLSPlaylist, opts.MPLSAngle, path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("playlist %d of '%s' is empty", opts.MPLSPlaylist, path)
	}

	var (
		info  clip.Info
		parts []sequence.Sequence[image.Image]
	)
	for idx, file := range files {
		c, err := open(ctx, backends, KindLSMASH, file)
		if err != nil {
			return nil, err
		}
		if idx == 0 {
			info = c.Info
		}
		parts = append(parts, c.Sequence)
	}
	return clip.New(sequence.Concat(parts...), info), nil
}

func conform(
	ctx context.Context,
	c *clip.Clip,
	opts Options,
	isImage bool,
) (*clip.Clip, error) {
	ref := opts.Ref
	kernel := opts.Kernel
	if kernel == "" {
		kernel = scaler.KernelBicubic
	}
	s, err := scaler.New(ref.Info.Width, ref.Info.Height, kernel, opts.KernelParams)
	if err != nil {
		return nil, err
	}
	logger.Debugf(ctx, "conforming %s to %s with %s", c, ref, s)

	info := clip.Info{
		Width:  ref.Info.Width,
		Height: ref.Info.Height,
		FPS:    ref.Info.FPS,
	}
	frames := s.Scale(c.Sequence)
	if !isImage {
		return clip.New(frames, info), nil
	}

	frame, err := frames.Get(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("unable to get the image: %w", err)
	}
	return clip.New(sequence.Repeat(frame, ref.Len()), info), nil
}
