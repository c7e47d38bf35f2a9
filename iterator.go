package vector

import "unsafe"

// Iterator is a position marker over the slots of a Vector.
// It stays valid only until the next operation that may reallocate
// the vector (PushBack, Insert, Resize or Reserve growing past capacity).
// Using a stale marker is not detected.
type Iterator[T any] struct {
	items []T
	pos   int
}

// Index returns the logical position the marker refers to.
func (it Iterator[T]) Index() int {
	return it.pos
}

// Value returns the element at the marker. The marker must not be End.
func (it Iterator[T]) Value() T {
	return it.items[it.pos]
}

// Ptr returns a reference to the element at the marker.
func (it Iterator[T]) Ptr() *T {
	return &it.items[it.pos]
}

// Set overwrites the element at the marker.
func (it Iterator[T]) Set(value T) {
	it.items[it.pos] = value
}

// Next returns the marker one slot forward.
func (it Iterator[T]) Next() Iterator[T] {
	return it.Add(1)
}

// Prev returns the marker one slot back.
func (it Iterator[T]) Prev() Iterator[T] {
	return it.Add(-1)
}

// Add returns the marker moved by n slots.
func (it Iterator[T]) Add(n int) Iterator[T] {
	return Iterator[T]{items: it.items, pos: it.pos + n}
}

// Distance returns the number of slots from it to other.
func (it Iterator[T]) Distance(other Iterator[T]) int {
	return other.pos - it.pos
}

// Equal reports whether both markers refer to the same slot of the same block.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.pos == other.pos && sameBlock(it.items, other.items)
}

// Less reports whether it precedes other.
func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.pos < other.pos
}

// Const returns a read-only marker for the same slot.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it: it}
}

// ConstIterator is a read-only position marker. Invalidation rules are
// the same as for Iterator.
type ConstIterator[T any] struct {
	it Iterator[T]
}

// Index returns the logical position the marker refers to.
func (c ConstIterator[T]) Index() int { return c.it.pos }

// Value returns the element at the marker. The marker must not be CEnd.
func (c ConstIterator[T]) Value() T { return c.it.Value() }

// Next returns the marker one slot forward.
func (c ConstIterator[T]) Next() ConstIterator[T] { return c.Add(1) }

// Prev returns the marker one slot back.
func (c ConstIterator[T]) Prev() ConstIterator[T] { return c.Add(-1) }

// Add returns the marker moved by n slots.
func (c ConstIterator[T]) Add(n int) ConstIterator[T] {
	return ConstIterator[T]{it: c.it.Add(n)}
}

// Distance returns the number of slots from c to other.
func (c ConstIterator[T]) Distance(other ConstIterator[T]) int {
	return c.it.Distance(other.it)
}

// Equal reports whether both markers refer to the same slot of the same block.
func (c ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return c.it.Equal(other.it)
}

// Less reports whether c precedes other.
func (c ConstIterator[T]) Less(other ConstIterator[T]) bool {
	return c.it.Less(other.it)
}

// sameBlock compares the identity of two backing blocks.
func sameBlock[T any](a, b []T) bool {
	return unsafe.SliceData(a) == unsafe.SliceData(b)
}
