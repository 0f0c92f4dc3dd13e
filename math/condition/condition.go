// Package condition provides generic conditions over ordered values
// (metrics, thresholds, frame numbers).
package condition

import (
	"cmp"
	"context"
	"fmt"
)

type Condition[T cmp.Ordered] interface {
	fmt.Stringer
	Match(context.Context, T) bool
}
