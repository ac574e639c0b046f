package catalog

import "testing"

func TestHandles(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		h := NewHandles()
		if h.Len() != 0 {
			t.Errorf("Len() = %d, want 0", h.Len())
		}
		if _, ok := h.Get("anything"); ok {
			t.Error("Get on empty collection should report absence")
		}
	})

	t.Run("set get delete", func(t *testing.T) {
		h := NewHandles()
		handle := NewFakeHandle(1)

		h.Set("a", handle)
		got, ok := h.Get("a")
		if !ok || got != Handle(handle) {
			t.Error("Get should return the stored handle")
		}
		if !h.Exists("a") {
			t.Error("Exists should report true after Set")
		}

		if !h.Delete("a") {
			t.Error("Delete should report true for existing entry")
		}
		if h.Delete("a") {
			t.Error("Delete should report false for missing entry")
		}
	})

	t.Run("set overwrites", func(t *testing.T) {
		h := NewHandles()
		h.Set("a", NewFakeHandle(1))
		replacement := NewFakeHandle(2)
		h.Set("a", replacement)

		got, _ := h.Get("a")
		if got != Handle(replacement) {
			t.Error("Set should overwrite the previous handle")
		}
		if h.Len() != 1 {
			t.Errorf("Len() = %d, want 1", h.Len())
		}
	})

	t.Run("names sorted", func(t *testing.T) {
		h := NewHandles()
		h.Set("c", NewFakeHandle(3))
		h.Set("a", NewFakeHandle(1))
		h.Set("b", NewFakeHandle(2))

		names := h.Names()
		want := []string{"a", "b", "c"}
		for i := range want {
			if names[i] != want[i] {
				t.Fatalf("Names() = %v, want %v", names, want)
			}
		}
	})

	t.Run("map is a copy with shared instances", func(t *testing.T) {
		h := NewHandles()
		handle := NewFakeHandle(1)
		h.Set("a", handle)

		m := h.Map()
		if m["a"] != Handle(handle) {
			t.Error("Map should share handle instances")
		}

		m["b"] = NewFakeHandle(2)
		if h.Exists("b") {
			t.Error("mutating the returned map must not affect the collection")
		}
	})

	t.Run("with handles map option", func(t *testing.T) {
		seed := map[string]Handle{"a": NewFakeHandle(1)}
		h := NewHandles(WithHandlesMap(seed))

		seed["b"] = NewFakeHandle(2)
		if h.Exists("b") {
			t.Error("collection must not alias the seed map")
		}
		if !h.Exists("a") {
			t.Error("collection should contain seeded entries")
		}
	})

	t.Run("for each early stop", func(t *testing.T) {
		h := NewHandles()
		h.Set("a", NewFakeHandle(1))
		h.Set("b", NewFakeHandle(2))

		seen := 0
		h.ForEach(func(string, Handle) bool {
			seen++
			return false
		})
		if seen != 1 {
			t.Errorf("ForEach visited %d entries after early stop, want 1", seen)
		}
	})

	t.Run("clear", func(t *testing.T) {
		h := NewHandles(WithHandlesCapacity(4))
		h.Set("a", NewFakeHandle(1))
		h.Clear()
		if h.Len() != 0 {
			t.Errorf("Len() = %d after Clear, want 0", h.Len())
		}
	})
}
