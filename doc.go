// Package vector implements a generic resizable array with explicit
// capacity control.
//
// # Overview
//
// A Vector owns exactly one contiguous Buffer. Appending is amortized
// O(1): when the buffer is full its capacity doubles (or becomes 1 for an
// empty vector), so every element is moved at most once per doubling.
// Shrinking never deallocates; Clear, PopBack and Resize to a smaller
// size only move the logical end.
//
// # Basic Usage
//
//	v := vector.Of(1, 2, 3, 4)
//	v.PushBack(5)
//
//	// Preallocate before population
//	w := vector.WithCapacity[string](vector.Reserve(128))
//
//	// Checked access
//	p, err := v.At(10)
//	if errors.Is(err, vector.ErrOutOfRange) {
//		// handle
//	}
//
//	// Position markers
//	it := v.Insert(v.Begin().Add(2), 99)
//	v.Erase(it)
//
//	// Range over live elements
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Ownership
//
// Clone makes a deep, tight copy (capacity equals size). Move and
// MoveFrom transfer the buffer in O(1) and leave the source empty with
// zero capacity. Swap exchanges buffers, sizes and capacities.
//
// # Position Markers
//
// Iterator and ConstIterator refer to a slot of the buffer that was
// current when they were taken. Any operation that may reallocate
// (PushBack, Insert, Resize, Reserve) invalidates them; fetch new markers
// from Begin, End or the return value of Insert and Erase. Stale markers
// are not detected.
//
// # Comparison
//
// Less orders vectors lexicographically. Equal, NotEqual, Greater,
// LessOrEqual, GreaterOrEqual and Compare are all derived from Less.
// LessFunc and EqualFunc accept element comparators for types outside
// cmp.Ordered.
//
// # Thread Safety
//
// Vector is not goroutine-safe. Callers sharing a vector between
// goroutines must synchronize access themselves.
package vector
