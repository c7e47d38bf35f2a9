package vector

import "unsafe"

// ElementSize returns the size in bytes of one slot.
func (v *Vector[T]) ElementSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// BytesReserved returns the number of bytes held by allocated slots.
func (v *Vector[T]) BytesReserved() int {
	return v.capacity * v.ElementSize()
}

// Reallocations returns how many times the buffer was replaced by a
// growing operation. The count moves with the contents on Swap and Move.
// Release, Clone and CopyFrom start it again from zero.
func (v *Vector[T]) Reallocations() int {
	return v.reallocs
}

// Utilization is Size divided by Capacity, or 0 for a vector that owns
// no slots.
func (v *Vector[T]) Utilization() float64 {
	if v.capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(v.capacity)
}

// Metrics captures size, capacity and growth counters in one value.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Size:          v.size,
		Capacity:      v.capacity,
		Reallocations: v.reallocs,
		ElementSize:   v.ElementSize(),
		BytesReserved: v.BytesReserved(),
		Utilization:   v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Size          int     // Live elements
	Capacity      int     // Allocated slots
	Reallocations int     // Buffer replacements by growth
	ElementSize   int     // Bytes per slot
	BytesReserved int     // Capacity * ElementSize
	Utilization   float64 // Ratio of size to capacity (0.0-1.0)
}
