package hub

import "testing"

func TestArenaAllocateGet(t *testing.T) {
	a := NewArena[int]()
	id := a.Allocate(42)
	if got := *a.Get(id); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
	if a.Len() != 1 {
		t.Fatalf("len = %d, want 1", a.Len())
	}
}

func TestArenaDeleteReusesSlot(t *testing.T) {
	a := NewArena[string]()
	id1 := a.Allocate("a")
	a.Delete(id1)
	id2 := a.Allocate("b")
	if id1 != id2 {
		t.Fatalf("expected slot reuse: id1=%d id2=%d", id1, id2)
	}
	if got := *a.Get(id2); got != "b" {
		t.Fatalf("got %q, want %q", got, "b")
	}
}

func TestArenaGetPanicsOnTombstone(t *testing.T) {
	a := NewArena[int]()
	id := a.Allocate(1)
	a.Delete(id)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on tombstoned access")
		}
	}()
	a.Get(id)
}

func TestArenaGetPanicsOutOfRange(t *testing.T) {
	a := NewArena[int]()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-range access")
		}
	}()
	a.Get(7)
}

func TestArenaPointerStableAcrossGrowth(t *testing.T) {
	a := NewArena[int]()
	first := a.Allocate(1)
	p := a.Get(first)
	for i := 0; i < 100; i++ {
		a.Allocate(i)
	}
	if *a.Get(first) != 1 {
		t.Fatalf("value at first slot changed after growth")
	}
	if p != a.Get(first) {
		t.Fatalf("pointer identity changed after growth")
	}
}

func TestArenaEachSkipsTombstones(t *testing.T) {
	a := NewArena[int]()
	id1 := a.Allocate(1)
	a.Allocate(2)
	a.Delete(id1)

	var seen []int
	a.Each(func(_ int, v *int) { seen = append(seen, *v) })
	if len(seen) != 1 || seen[0] != 2 {
		t.Fatalf("got %v, want [2]", seen)
	}
}

func TestArenaFind(t *testing.T) {
	a := NewArena[int]()
	a.Allocate(1)
	id := a.Allocate(2)
	a.Allocate(3)

	found, ok := a.Find(func(v *int) bool { return *v == 2 })
	if !ok || found != id {
		t.Fatalf("find = (%d, %v), want (%d, true)", found, ok, id)
	}

	_, ok = a.Find(func(v *int) bool { return *v == 99 })
	if ok {
		t.Fatal("expected not found")
	}
}
