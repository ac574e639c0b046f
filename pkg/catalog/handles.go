package catalog

import (
	"maps"
	"slices"
)

// Handles is a map of resource names to handles. The map itself is
// owned exclusively by one catalog; the Handle instances it holds may
// be shared with derived catalogs.
type Handles struct {
	handles map[string]Handle
}

// HandlesOption defines a function that configures a Handles instance.
type HandlesOption func(*Handles)

// WithHandlesCapacity sets the initial capacity of the handles map.
func WithHandlesCapacity(capacity int) HandlesOption {
	return func(h *Handles) {
		h.handles = make(map[string]Handle, capacity)
	}
}

// WithHandlesMap initializes the map with existing handles.
func WithHandlesMap(handles map[string]Handle) HandlesOption {
	return func(h *Handles) {
		if handles != nil {
			h.handles = make(map[string]Handle, len(handles))
			maps.Copy(h.handles, handles)
		}
	}
}

// NewHandles creates a new Handles map with optional configuration.
func NewHandles(opts ...HandlesOption) *Handles {
	h := &Handles{
		handles: make(map[string]Handle),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Get returns a handle by name and whether it exists.
func (h *Handles) Get(name string) (Handle, bool) {
	handle, ok := h.handles[name]
	return handle, ok
}

// Set stores a handle by name, overwriting any existing entry.
func (h *Handles) Set(name string, handle Handle) {
	h.handles[name] = handle
}

// Delete removes a handle by name. Returns whether it existed.
func (h *Handles) Delete(name string) bool {
	if _, exists := h.handles[name]; !exists {
		return false
	}
	delete(h.handles, name)
	return true
}

// Exists checks if a handle exists without returning it.
func (h *Handles) Exists(name string) bool {
	_, exists := h.handles[name]
	return exists
}

// Len returns the number of handles.
func (h *Handles) Len() int {
	return len(h.handles)
}

// Names returns the sorted names of all handles.
func (h *Handles) Names() []string {
	names := slices.Collect(maps.Keys(h.handles))
	slices.Sort(names)
	return names
}

// Map returns a copy of the underlying map. The Handle instances are
// shared with the collection.
func (h *Handles) Map() map[string]Handle {
	result := make(map[string]Handle, len(h.handles))
	maps.Copy(result, h.handles)
	return result
}

// ForEach applies a function to each handle. If the function returns
// false, iteration stops early.
func (h *Handles) ForEach(fn func(name string, handle Handle) bool) {
	for name, handle := range h.handles {
		if !fn(name, handle) {
			break
		}
	}
}

// Clear removes all handles.
func (h *Handles) Clear() {
	for k := range h.handles {
		delete(h.handles, k)
	}
}
