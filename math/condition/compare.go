package condition

import (
	"cmp"
	"context"
	"fmt"
)

type Operator int

const (
	OperatorUndefined = Operator(iota)
	OperatorGreater
	OperatorGreaterOrEqual
	OperatorLessOrEqual
)

func (op Operator) String() string {
	switch op {
	case OperatorUndefined:
		return "<undefined>"
	case OperatorGreater:
		return ">"
	case OperatorGreaterOrEqual:
		return ">="
	case OperatorLessOrEqual:
		return "<="
	}
	return fmt.Sprintf("<unknown_operator_%d>", int(op))
}

// Compare matches values standing in relation Operator to Ref. Comparisons
// with NaN never match.
type Compare[T cmp.Ordered] struct {
	Operator Operator
	Ref      T
}

var _ Condition[int] = Compare[int]{}

func Greater[T cmp.Ordered](ref T) Compare[T] {
	return Compare[T]{Operator: OperatorGreater, Ref: ref}
}

func GreaterOrEqual[T cmp.Ordered](ref T) Compare[T] {
	return Compare[T]{Operator: OperatorGreaterOrEqual, Ref: ref}
}

func LessOrEqual[T cmp.Ordered](ref T) Compare[T] {
	return Compare[T]{Operator: OperatorLessOrEqual, Ref: ref}
}

func (c Compare[T]) Match(
	_ context.Context,
	v T,
) bool {
	switch c.Operator {
	case OperatorGreater:
		return v > c.Ref
	case OperatorGreaterOrEqual:
		return v >= c.Ref
	case OperatorLessOrEqual:
		return v <= c.Ref
	}
	return false
}

func (c Compare[T]) String() string {
	return fmt.Sprintf("%s %v", c.Operator, c.Ref)
}
