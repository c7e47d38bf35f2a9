package vector

import (
	"errors"
	"fmt"
	"iter"
)

// ErrOutOfRange is returned by the checked accessors when the index is
// outside the live range [0, Size()).
var ErrOutOfRange = errors.New("vector: index out of range")

// CapacityHint asks for capacity to be allocated before a vector is populated.
// Build one with Reserve.
type CapacityHint struct {
	capacity int
}

// Reserve returns a hint requesting n preallocated slots.
func Reserve(n int) CapacityHint {
	return CapacityHint{capacity: n}
}

// Capacity returns the requested number of slots.
func (h CapacityHint) Capacity() int {
	return h.capacity
}

// Vector is a resizable array that owns a single contiguous Buffer.
// Slots in [0, Size()) are live; slots in [Size(), Capacity()) are
// allocated but hold unspecified values. Not goroutine-safe.
type Vector[T any] struct {
	buf      Buffer[T]
	size     int
	capacity int
	reallocs int
}

// New returns an empty vector with no allocated slots.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSize returns a vector of n zero values with capacity n.
func NewSize[T any](n int) *Vector[T] {
	return &Vector[T]{buf: AllocBuffer[T](n), size: n, capacity: n}
}

// NewFilled returns a vector of n copies of value with capacity n.
func NewFilled[T any](n int, value T) *Vector[T] {
	v := NewSize[T](n)
	items := v.buf.Slots()
	for i := range items {
		items[i] = value
	}
	return v
}

// Of returns a vector holding values in order, with capacity len(values).
func Of[T any](values ...T) *Vector[T] {
	v := NewSize[T](len(values))
	copy(v.buf.Slots(), values)
	return v
}

// WithCapacity returns an empty vector with the hinted capacity preallocated.
func WithCapacity[T any](h CapacityHint) *Vector[T] {
	v := New[T]()
	v.ReserveHint(h)
	return v
}

// Move transfers the contents of src into a new vector in O(1).
// src is left empty with zero capacity.
func Move[T any](src *Vector[T]) *Vector[T] {
	v := New[T]()
	v.Swap(src)
	return v
}

// Clone returns a deep copy of the live elements. The copy is tight:
// its capacity equals its size.
func (v *Vector[T]) Clone() *Vector[T] {
	c := NewSize[T](v.size)
	copy(c.buf.Slots(), v.buf.Slots()[:v.size])
	return c
}

// CopyFrom replaces the contents of v with a deep copy of src.
func (v *Vector[T]) CopyFrom(src *Vector[T]) {
	if v == src {
		return
	}
	tmp := src.Clone()
	v.Swap(tmp)
	tmp.Release()
}

// MoveFrom replaces the contents of v with those of src, leaving src empty.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Release()
	v.Swap(src)
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of allocated slots.
func (v *Vector[T]) Capacity() int {
	return v.capacity
}

// Empty reports whether the vector has no live elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Get returns the element at index i without checking it against Size.
func (v *Vector[T]) Get(i int) T {
	return *v.buf.At(i)
}

// Ref returns a reference to the element at index i without checking it
// against Size. The reference is invalidated by reallocation.
func (v *Vector[T]) Ref(i int) *T {
	return v.buf.At(i)
}

// Set overwrites the element at index i without checking it against Size.
func (v *Vector[T]) Set(i int, value T) {
	*v.buf.At(i) = value
}

// At returns a reference to the element at index i, or an error wrapping
// ErrOutOfRange if i is not a live position.
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, v.size)
	}
	return v.buf.At(i), nil
}

// AtValue is the read-only form of At.
func (v *Vector[T]) AtValue(i int) (T, error) {
	p, err := v.At(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Front returns the first element. The vector must not be empty.
func (v *Vector[T]) Front() T {
	return v.Get(0)
}

// Back returns the last element. The vector must not be empty.
func (v *Vector[T]) Back() T {
	return v.Get(v.size - 1)
}

// Data returns the live elements as a slice sharing the vector's storage.
// The slice is valid until the next reallocation.
func (v *Vector[T]) Data() []T {
	return v.buf.Slots()[:v.size:v.size]
}

// Clear drops all elements but keeps the allocated slots for reuse.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Reserve ensures at least n slots are allocated. Size is unchanged.
func (v *Vector[T]) Reserve(n int) {
	if n > v.capacity {
		v.reallocate(n)
	}
}

// ReserveHint is Reserve driven by a CapacityHint.
func (v *Vector[T]) ReserveHint(h CapacityHint) {
	v.Reserve(h.capacity)
}

// Resize sets the number of live elements to n. Shrinking keeps capacity
// and leaves the excluded slots untouched. Growing always reallocates to
// max(n, 2*Capacity()) and exposes zero values in [Size(), n).
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		panic("vector: negative size")
	}
	if n <= v.size {
		v.size = n
		return
	}
	v.reallocate(nextCapacity(v.capacity, n))
	clear(v.buf.Slots()[v.size:n])
	v.size = n
}

// PushBack appends value, doubling capacity (or setting it to 1) when full.
func (v *Vector[T]) PushBack(value T) {
	if v.size == v.capacity {
		v.reallocate(nextCapacity(v.capacity, v.size+1))
	}
	*v.buf.At(v.size) = value
	v.size++
}

// PopBack removes the last element. It is a no-op on an empty vector.
// The vacated slot is not reset.
func (v *Vector[T]) PopBack() {
	if v.size != 0 {
		v.size--
	}
}

// Insert places value before pos and returns a marker to it. pos may be
// End(). Markers taken before the call must not be reused.
// Only the position of pos is used: a marker from another vector or one
// left stale by a reallocation is taken as an index into v, undetected.
func (v *Vector[T]) Insert(pos Iterator[T], value T) Iterator[T] {
	return v.InsertAt(pos.pos, value)
}

// InsertAt places value at logical index i, shifting later elements right.
func (v *Vector[T]) InsertAt(i int, value T) Iterator[T] {
	if i < 0 || i > v.size {
		panic("vector: insert position out of range")
	}
	if v.size == v.capacity {
		capacity := nextCapacity(v.capacity, v.size+1)
		next := AllocBuffer[T](capacity)
		old, items := v.buf.Slots(), next.Slots()
		copy(items[:i], old[:i])
		items[i] = value
		copy(items[i+1:v.size+1], old[i:v.size])
		v.adopt(&next, capacity)
	} else {
		items := v.buf.Slots()
		copy(items[i+1:v.size+1], items[i:v.size])
		items[i] = value
	}
	v.size++
	return Iterator[T]{items: v.buf.Slots(), pos: i}
}

// Erase removes the element at pos and returns a marker to the element
// that followed it, or End() if it was the last one. As with Insert, only
// the position of pos is used; foreign or stale markers are not detected.
func (v *Vector[T]) Erase(pos Iterator[T]) Iterator[T] {
	return v.EraseAt(pos.pos)
}

// EraseAt removes the element at logical index i.
func (v *Vector[T]) EraseAt(i int) Iterator[T] {
	if i < 0 || i >= v.size {
		panic("vector: erase position out of range")
	}
	items := v.buf.Slots()
	copy(items[i:v.size-1], items[i+1:v.size])
	v.size--
	return Iterator[T]{items: items, pos: i}
}

// Swap exchanges the contents of v and other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
	v.reallocs, other.reallocs = other.reallocs, v.reallocs
}

// Release drops the owned buffer. The vector stays usable and empty.
func (v *Vector[T]) Release() {
	v.buf.Release()
	v.size = 0
	v.capacity = 0
	v.reallocs = 0
}

// Begin returns a marker to the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{items: v.buf.Slots(), pos: 0}
}

// End returns a marker one past the last element.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{items: v.buf.Slots(), pos: v.size}
}

// CBegin returns a read-only marker to the first element.
func (v *Vector[T]) CBegin() ConstIterator[T] {
	return v.Begin().Const()
}

// CEnd returns a read-only marker one past the last element.
func (v *Vector[T]) CEnd() ConstIterator[T] {
	return v.End().Const()
}

// All returns an iterator over index/value pairs of the live elements.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.buf.At(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.buf.At(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/value pairs from last to first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, *v.buf.At(i)) {
				return
			}
		}
	}
}

// reallocate moves the live elements into a fresh buffer of n slots.
func (v *Vector[T]) reallocate(n int) {
	next := AllocBuffer[T](n)
	copy(next.Slots(), v.buf.Slots()[:v.size])
	v.adopt(&next, n)
}

// adopt takes ownership of next and releases the previous block.
func (v *Vector[T]) adopt(next *Buffer[T], capacity int) {
	v.buf.Swap(next)
	next.Release()
	v.capacity = capacity
	v.reallocs++
}

// nextCapacity is the growth policy shared by every growing operation:
// double the current capacity (1 from empty) unless requested is larger.
func nextCapacity(current, requested int) int {
	doubled := 1
	if current > 0 {
		doubled = current * 2
	}
	return max(requested, doubled)
}
