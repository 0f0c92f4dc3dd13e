package clipfunc

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/clipfunc/logger"
	"github.com/xaionaro-go/clipfunc/sequence"
	"github.com/xaionaro-go/clipfunc/types"
)

// ReplaceRanges returns base with the frames covered by ranges taken from
// replacement. Ranges are inclusive and are validated against base's
// length.
//
// The ranges are applied one by one, in the given order: each step takes
// the range from replacement and the prefix and suffix around it from the
// result of the previous step. Overlapping ranges therefore depend on the
// order; non-overlapping ones do not.
//
// An empty list returns base itself, and a range spanning the whole clip
// yields replacement itself. On error no clip is returned.
func ReplaceRanges[T any](
	ctx context.Context,
	base sequence.Sequence[T],
	replacement sequence.Sequence[T],
	ranges types.Ranges,
) (_ret sequence.Sequence[T], _err error) {
	logger.Tracef(ctx, "ReplaceRanges(%s)", ranges)
	defer func() { logger.Tracef(ctx, "/ReplaceRanges(%s): %v", ranges, _err) }()

	length := base.Len()
	out := base
	for idx, r := range ranges {
		if err := r.Validate(length); err != nil {
			return nil, fmt.Errorf("replace_ranges: range #%d (%s): %w", idx, r, err)
		}

		tmp, err := sequence.Sub(replacement, r.Start, r.End+1)
		if err != nil {
			return nil, fmt.Errorf("replace_ranges: unable to take range #%d (%s) from the replacement clip: %w", idx, r, err)
		}
		if r.Start != 0 {
			prefix, err := sequence.Sub(out, 0, r.Start)
			if err != nil {
				return nil, fmt.Errorf("replace_ranges: unable to take the frames before range #%d (%s): %w", idx, r, err)
			}
			tmp = sequence.Concat(prefix, tmp)
		}
		if r.End < out.Len()-1 {
			suffix, err := sequence.Sub(out, r.End+1, out.Len())
			if err != nil {
				return nil, fmt.Errorf("replace_ranges: unable to take the frames after range #%d (%s): %w", idx, r, err)
			}
			tmp = sequence.Concat(tmp, suffix)
		}
		out = tmp
	}
	return out, nil
}

// RFS is a short alias of ReplaceRanges.
func RFS[T any](
	ctx context.Context,
	base sequence.Sequence[T],
	replacement sequence.Sequence[T],
	ranges types.Ranges,
) (sequence.Sequence[T], error) {
	return ReplaceRanges(ctx, base, replacement, ranges)
}
