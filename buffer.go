package vector

// Buffer owns a contiguous block of slots of type T.
// It carries no size of its own; the owner tracks which slots are live.
// A Buffer must not be copied after first use: exchange ownership with
// Swap instead so that a block is never owned by two buffers.
type Buffer[T any] struct {
	items []T
}

// AllocBuffer returns a Buffer owning n zero-valued slots.
// n == 0 yields an empty buffer with a nil block. Panics if n < 0.
func AllocBuffer[T any](n int) Buffer[T] {
	if n < 0 {
		panic("vector: negative buffer length")
	}
	if n == 0 {
		return Buffer[T]{}
	}
	return Buffer[T]{items: make([]T, n)}
}

// At returns a reference to slot i. No check is made against the
// owner's logical size; i must be below Len().
func (b *Buffer[T]) At(i int) *T {
	return &b.items[i]
}

// Len returns the number of allocated slots.
func (b *Buffer[T]) Len() int {
	return len(b.items)
}

// Slots returns the whole allocated block.
func (b *Buffer[T]) Slots() []T {
	return b.items
}

// Swap exchanges the owned blocks of b and other in O(1).
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.items, other.items = other.items, b.items
}

// Release drops the owned block. Calling Release on an empty or
// already released buffer is a no-op.
func (b *Buffer[T]) Release() {
	b.items = nil
}
