package vector

import (
	"slices"
	"testing"
)

func TestIteratorTraversal(t *testing.T) {
	v := Of(1, 2, 3, 4)

	var got []int
	for it := v.Begin(); !it.Equal(v.End()); it = it.Next() {
		got = append(got, it.Value())
	}
	if !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Errorf("forward traversal = %v, want [1 2 3 4]", got)
	}

	got = got[:0]
	for it := v.CEnd(); !it.Equal(v.CBegin()); {
		it = it.Prev()
		got = append(got, it.Value())
	}
	if !slices.Equal(got, []int{4, 3, 2, 1}) {
		t.Errorf("backward traversal = %v, want [4 3 2 1]", got)
	}

	if d := v.Begin().Distance(v.End()); d != v.Size() {
		t.Errorf("Distance(Begin, End) = %d, want %d", d, v.Size())
	}
	if d := v.CBegin().Distance(v.CEnd()); d != v.Size() {
		t.Errorf("const Distance(Begin, End) = %d, want %d", d, v.Size())
	}
}

func TestIteratorVisitsOnlyLiveElements(t *testing.T) {
	v := WithCapacity[int](Reserve(10))
	v.PushBack(1)
	v.PushBack(2)

	n := 0
	for it := v.CBegin(); it.Less(v.CEnd()); it = it.Next() {
		n++
	}
	if n != 2 {
		t.Errorf("visited %d elements, want 2", n)
	}
}

func TestIteratorEmptyVector(t *testing.T) {
	v := New[int]()
	if !v.Begin().Equal(v.End()) {
		t.Error("Begin != End on empty vector")
	}
	if !v.CBegin().Equal(v.CEnd()) {
		t.Error("CBegin != CEnd on empty vector")
	}

	v.Reserve(4)
	if !v.Begin().Equal(v.End()) {
		t.Error("Begin != End on empty vector with capacity")
	}
}

func TestIteratorMutation(t *testing.T) {
	v := Of(1, 2, 3)
	it := v.Begin().Next()
	it.Set(20)
	*it.Ptr() += 1
	if v.Get(1) != 21 {
		t.Errorf("v[1] = %d, want 21", v.Get(1))
	}

	c := it.Const()
	if c.Value() != 21 || c.Index() != 1 {
		t.Errorf("Const marker = %d at %d, want 21 at 1", c.Value(), c.Index())
	}
}

func TestIteratorAcrossReallocation(t *testing.T) {
	v := Of(1, 2)
	before := v.Begin()
	v.PushBack(3)

	// The vector grew, so markers from before point at a different block
	if before.Equal(v.Begin()) {
		t.Error("marker taken before reallocation compares equal to new Begin")
	}
}

func TestRangeFunctions(t *testing.T) {
	v := Of("a", "b", "c")
	v.Reserve(8)

	var idx []int
	var vals []string
	for i, s := range v.All() {
		idx = append(idx, i)
		vals = append(vals, s)
	}
	if !slices.Equal(idx, []int{0, 1, 2}) || !slices.Equal(vals, []string{"a", "b", "c"}) {
		t.Errorf("All = %v %v", idx, vals)
	}

	if got := slices.Collect(v.Values()); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Values = %v", got)
	}

	vals = vals[:0]
	for _, s := range v.Backward() {
		vals = append(vals, s)
	}
	if !slices.Equal(vals, []string{"c", "b", "a"}) {
		t.Errorf("Backward = %v", vals)
	}

	// Early break
	n := 0
	for range v.Values() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("break visited %d elements, want 1", n)
	}
}

func TestMarkerPositionOnly(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(7, 8)

	// A marker from b is read as an index into a
	it := a.Insert(b.Begin().Add(1), 99)
	if !slices.Equal(a.Data(), []int{1, 99, 2, 3}) {
		t.Errorf("after Insert = %v, want [1 99 2 3]", a.Data())
	}
	if !it.Equal(a.Begin().Add(1)) {
		t.Error("returned marker does not refer to a")
	}

	// A stale marker from before a reallocation keeps its index
	stale := a.Begin().Add(3)
	for _, x := range []int{4, 5, 6} {
		a.PushBack(x)
	}
	if a.Reallocations() != 2 {
		t.Fatalf("Reallocations = %d, want 2", a.Reallocations())
	}
	a.Erase(stale)
	if !slices.Equal(a.Data(), []int{1, 99, 2, 4, 5, 6}) {
		t.Errorf("after Erase = %v, want [1 99 2 4 5 6]", a.Data())
	}
	if !slices.Equal(b.Data(), []int{7, 8}) {
		t.Errorf("b changed to %v", b.Data())
	}
}
