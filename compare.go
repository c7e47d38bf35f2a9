package vector

import (
	"cmp"
	"slices"
)

// LessFunc reports whether a precedes b lexicographically using less to
// order elements. The first differing element decides; when one vector
// is a prefix of the other, the shorter one is less.
func LessFunc[T any](a, b *Vector[T], less func(x, y T) bool) bool {
	x, y := a.Data(), b.Data()
	for i := 0; i < len(x) && i < len(y); i++ {
		if less(x[i], y[i]) {
			return true
		}
		if less(y[i], x[i]) {
			return false
		}
	}
	return len(x) < len(y)
}

// EqualFunc reports whether a and b have the same size and eq holds for
// every pair of elements.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	return slices.EqualFunc(a.Data(), b.Data(), eq)
}

// Less is the lexicographic order on vectors of ordered elements.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return LessFunc(a, b, func(x, y T) bool { return x < y })
}

// Equal reports whether neither vector is less than the other. Elements
// that are unordered with each other, such as two NaNs, count as equal,
// which keeps Equal consistent with Compare and LessOrEqual.
func Equal[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b) && !Less(b, a)
}

// NotEqual is the negation of Equal.
func NotEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// Greater reports whether b precedes a.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool {
	return Less(b, a)
}

// LessOrEqual reports whether b does not precede a.
func LessOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(b, a)
}

// GreaterOrEqual reports whether a does not precede b.
func GreaterOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}

// Compare returns -1, 0 or +1 depending on whether a is less than, equal
// to, or greater than b.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	switch {
	case Less(a, b):
		return -1
	case Less(b, a):
		return 1
	}
	return 0
}
