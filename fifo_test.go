package evicache

import (
	"errors"
	"slices"
	"testing"
)

func TestFIFO_EvictsOldest(t *testing.T) {
	c, err := NewFIFO[int, int](3)
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}

	c.Put(1, 1)
	c.Put(2, 2)
	c.Put(1, 15) // update, no reorder

	if v, err := c.Get(1); err != nil || v != 15 {
		t.Fatalf("expected 15, got %d (%v)", v, err)
	}

	c.Put(3, 3)
	c.Put(4, 4) // evicts 1, the oldest by insertion; its update did not help

	if _, err := c.Get(1); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected 1 to be evicted, got %v", err)
	}
	if v, err := c.Get(2); err != nil || v != 2 {
		t.Fatalf("expected 2, got %d (%v)", v, err)
	}

	c.Put(5, 5) // evicts 2

	if _, err := c.Get(2); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected 2 to be evicted, got %v", err)
	}

	c.Put(5, 0)
	if v, err := c.Get(5); err != nil || v != 0 {
		t.Fatalf("expected 0, got %d (%v)", v, err)
	}

	c.Clear()
	if _, err := c.Get(5); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound after clear, got %v", err)
	}
}

func TestFIFO_GetDoesNotReorder(t *testing.T) {
	c, _ := NewFIFO[string, int](2)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a") // reads never refresh queue position

	c.Put("c", 3)

	if _, err := c.Get("a"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected a to be evicted, got %v", err)
	}
	if _, err := c.Get("b"); err != nil {
		t.Fatalf("expected b to survive: %v", err)
	}
}

func TestFIFO_StringKeys(t *testing.T) {
	c, _ := NewFIFO[string, int](3)

	c.Put("first_item", 1)
	c.Put("second_item", 2)
	c.Put("first_item", 15)

	if v, err := c.Get("first_item"); err != nil || v != 15 {
		t.Fatalf("expected 15, got %d (%v)", v, err)
	}

	c.Put("third_item", 3)
	c.Put("fourth_item", 4)

	if _, err := c.Get("first_item"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected first_item to be evicted, got %v", err)
	}
	if v, err := c.Get("second_item"); err != nil || v != 2 {
		t.Fatalf("expected 2, got %d (%v)", v, err)
	}
}

func TestFIFO_KeysOldestFirst(t *testing.T) {
	c, _ := NewFIFO[string, int](4)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)
	c.Put("b", 20)

	if got := c.Keys(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("expected [a b c], got %v", got)
	}
}
