// Package tuple extends samber/lo tuples with the chaining helpers used to
// spell multi-value style fields inline.
package tuple

import "github.com/samber/lo"

// Pair groups two values.
func Pair[A, B any](a A, b B) lo.Tuple2[A, B] {
	return lo.T2(a, b)
}

// Triple grows a pair into a 3-tuple.
func Triple[A, B, C any](p lo.Tuple2[A, B], c C) lo.Tuple3[A, B, C] {
	return lo.T3(p.A, p.B, c)
}

// Quad grows a 3-tuple into a 4-tuple.
func Quad[A, B, C, D any](t lo.Tuple3[A, B, C], d D) lo.Tuple4[A, B, C, D] {
	return lo.T4(t.A, t.B, t.C, d)
}

// Quint grows a 4-tuple into a 5-tuple.
func Quint[A, B, C, D, E any](q lo.Tuple4[A, B, C, D], e E) lo.Tuple5[A, B, C, D, E] {
	return lo.T5(q.A, q.B, q.C, q.D, e)
}

// Nested is the left-nested ((( a, b ), c ), d) encoding of four values.
type Nested[T any] = lo.Tuple2[lo.Tuple2[lo.Tuple2[T, T], T], T]

// Nest4 builds the nested encoding of four values.
func Nest4[T any](a, b, c, d T) Nested[T] {
	return lo.T2(lo.T2(lo.T2(a, b), c), d)
}

// First returns the innermost left value of a nested 4-value encoding.
func First[T any](n Nested[T]) T { return n.A.A.A }

// Second returns the innermost right value of a nested 4-value encoding.
func Second[T any](n Nested[T]) T { return n.A.A.B }

// Third returns the middle right value of a nested 4-value encoding.
func Third[T any](n Nested[T]) T { return n.A.B }

// Fourth returns the outermost right value of a nested 4-value encoding.
func Fourth[T any](n Nested[T]) T { return n.B }
