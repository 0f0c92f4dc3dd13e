// Package bookmark handles frame bookmarks (as saved by VSEdit) and
// counting frames relative to them.
package bookmark

import (
	"fmt"
	"os"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// Bookmarks is a list of frame numbers. After Normalize it is sorted
// ascending and starts with 0.
type Bookmarks []int

type ErrNoBookmark struct {
	Frame int
}

func (e ErrNoBookmark) Error() string {
	return fmt.Sprintf("there is no bookmark at or before frame %d", e.Frame)
}

// Normalize sorts the bookmarks and inserts the leading 0 if it is
// missing. The receiver is not modified.
func (s Bookmarks) Normalize() Bookmarks {
	result := slices.Clone(s)
	slices.Sort(result)
	if len(result) == 0 || result[0] != 0 {
		result = slices.Insert(result, 0, 0)
	}
	return result
}

// Latest returns the greatest bookmark not after frame n. The bookmarks
// are expected to be sorted.
func (s Bookmarks) Latest(n int) (int, error) {
	idx := sort.SearchInts(s, n+1)
	if idx == 0 {
		return 0, ErrNoBookmark{Frame: n}
	}
	return s[idx-1], nil
}

// Since returns the amount of frames elapsed since the latest bookmark
// at or before frame n.
func (s Bookmarks) Since(n int) (int, error) {
	b, err := s.Latest(n)
	if err != nil {
		return 0, err
	}
	return n - b, nil
}

// Since is a shorthand for bookmarks.Since(n).
func Since(n int, bookmarks Bookmarks) (int, error) {
	return bookmarks.Since(n)
}

func (s Bookmarks) String() string {
	var result []string
	for _, b := range s {
		result = append(result, strconv.Itoa(b))
	}
	return strings.Join(result, ", ")
}

// Parse parses a comma-separated list of non-negative frame numbers
// ("0, 120, 530") and normalizes it.
func Parse(in string) (Bookmarks, error) {
	in = strings.TrimSpace(in)
	if in == "" {
		return Bookmarks{}.Normalize(), nil
	}

	var result Bookmarks
	for idx, word := range strings.Split(in, ",") {
		word = strings.TrimSpace(word)
		n, err := strconv.Atoi(word)
		if err != nil {
			return nil, fmt.Errorf("unable to parse bookmark #%d %q: %w", idx, word, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("bookmark #%d is negative: %d", idx, n)
		}
		result = append(result, n)
	}
	return result.Normalize(), nil
}

// Load reads and parses a bookmarks file.
func Load(path string) (Bookmarks, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read the bookmarks file '%s': %w", path, err)
	}
	bookmarks, err := Parse(string(b))
	if err != nil {
		return nil, fmt.Errorf("unable to parse the bookmarks file '%s': %w", path, err)
	}
	return bookmarks, nil
}
