package evicache

import (
	"errors"
	"slices"
	"testing"
)

func TestFILO_EvictsNewest(t *testing.T) {
	c, err := NewFILO[string, int](3)
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)

	// Full: the next new key pushes out the previous newest.
	c.Put("d", 4)

	if _, err := c.Get("c"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected c to be evicted, got %v", err)
	}
	for _, key := range []string{"a", "b", "d"} {
		if _, err := c.Get(key); err != nil {
			t.Fatalf("expected %s to survive: %v", key, err)
		}
	}
}

func TestFILO_UpdateDoesNotReorder(t *testing.T) {
	c, _ := NewFILO[string, int](3)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)
	c.Put("a", 10) // update in place, a stays oldest

	c.Put("d", 4) // evicts c, still the newest

	if _, err := c.Get("c"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected c to be evicted, got %v", err)
	}
	if v, err := c.Get("a"); err != nil || v != 10 {
		t.Fatalf("expected a=10, got %d (%v)", v, err)
	}
}

func TestFILO_GetDoesNotReorder(t *testing.T) {
	c, _ := NewFILO[string, int](2)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("b")

	c.Put("c", 3) // b is still the newest and gets evicted

	if _, err := c.Get("b"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected b to be evicted, got %v", err)
	}
	if _, err := c.Get("a"); err != nil {
		t.Fatalf("expected a to survive: %v", err)
	}
}

func TestFILO_KeysInsertionOrder(t *testing.T) {
	c, _ := NewFILO[string, int](4)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)

	if got := c.Keys(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("expected [a b c], got %v", got)
	}
}
