package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is a closed interval of frame indexes: both Start and End are
// included.
type Range struct {
	Start int
	End   int
}

// Frame returns the Range covering the single frame n.
func Frame(n int) Range {
	return Range{Start: n, End: n}
}

// Span returns the Range covering frames [start, end].
func Span(start, end int) Range {
	return Range{Start: start, End: end}
}

func (r Range) IsSingleFrame() bool {
	return r.Start == r.End
}

// Len returns the amount of frames covered by the range.
func (r Range) Len() int {
	return r.End - r.Start + 1
}

// Validate checks the range against a sequence of the given length.
func (r Range) Validate(length int) error {
	if r.Start > r.End {
		return ErrInvalidRange{Range: r}
	}
	if r.Start < 0 || r.Start >= length {
		return ErrIndexOutOfRange{Index: r.Start, Length: length}
	}
	if r.End >= length {
		return ErrIndexOutOfRange{Index: r.End, Length: length}
	}
	return nil
}

func (r Range) String() string {
	if r.IsSingleFrame() {
		return strconv.Itoa(r.Start)
	}
	return fmt.Sprintf("[%d %d]", r.Start, r.End)
}

// Ranges is an ordered list of ranges; the order is significant, see
// clipfunc.ReplaceRanges.
type Ranges []Range

func (s Ranges) String() string {
	var result []string
	for _, r := range s {
		result = append(result, r.String())
	}
	return strings.Join(result, " ")
}

// Set implements pflag.Value.
func (s *Ranges) Set(in string) error {
	ranges, err := ParseRanges(in)
	if err != nil {
		return err
	}
	*s = append(*s, ranges...)
	return nil
}

// Type implements pflag.Value.
func (s *Ranges) Type() string {
	return "ranges"
}

// ParseRanges parses ranges in the ReplaceFramesSimple notation:
// "[10 20] 35 [40 45]". A bracketed pair is an inclusive span,
// a bare number is a single frame. Commas are treated as whitespace.
func ParseRanges(s string) (Ranges, error) {
	in := strings.ReplaceAll(s, ",", " ")
	in = strings.ReplaceAll(in, "[", " [ ")
	in = strings.ReplaceAll(in, "]", " ] ")
	tokens := strings.Fields(in)

	var result Ranges
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		switch token {
		case "[":
			if i+3 >= len(tokens) || tokens[i+3] != "]" {
				return nil, fmt.Errorf("unable to parse ranges %q: expected '[start end]' at token #%d", s, i)
			}
			start, err := strconv.Atoi(tokens[i+1])
			if err != nil {
				return nil, fmt.Errorf("unable to parse the start of a range %q: %w", tokens[i+1], err)
			}
			end, err := strconv.Atoi(tokens[i+2])
			if err != nil {
				return nil, fmt.Errorf("unable to parse the end of a range %q: %w", tokens[i+2], err)
			}
			result = append(result, Span(start, end))
			i += 3
		case "]":
			return nil, fmt.Errorf("unable to parse ranges %q: unexpected ']' at token #%d", s, i)
		default:
			n, err := strconv.Atoi(token)
			if err != nil {
				return nil, fmt.Errorf("unable to parse frame number %q: %w", token, err)
			}
			result = append(result, Frame(n))
		}
	}
	return result, nil
}
