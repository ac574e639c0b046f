// Package handles provides ready-made Handle implementations for the
// datakit catalog: an in-memory handle for intermediate values and
// file-backed handles for YAML and JSON documents.
package handles

import (
	"fmt"

	"github.com/agentstation/datakit/pkg/catalog"
	"github.com/agentstation/datakit/pkg/errors"
)

// ErrEmpty indicates a load from a memory handle that has never been
// saved to.
var ErrEmpty = errors.New("no data has been saved yet")

// Compile-time interface checks to ensure proper implementation.
var _ catalog.Handle = (*Memory)(nil)

// Memory is a Handle holding its value in process memory. It is useful
// for intermediate results that never touch storage.
type Memory struct {
	data any
	set  bool
}

// NewMemory creates an empty memory handle. Loading before the first
// save fails with ErrEmpty.
func NewMemory() *Memory {
	return &Memory{}
}

// NewMemoryFrom creates a memory handle seeded with data.
func NewMemoryFrom(data any) *Memory {
	return &Memory{data: data, set: true}
}

// Load returns the stored value.
func (h *Memory) Load() (any, error) {
	if !h.set {
		return nil, errors.WrapHandle("load", "memory", ErrEmpty)
	}
	return h.data, nil
}

// Save stores the value.
func (h *Memory) Save(data any) error {
	h.data = data
	h.set = true
	return nil
}

// Describe reports the handle type and the stored value's type.
func (h *Memory) Describe() map[string]any {
	desc := map[string]any{
		"type":  "memory",
		"empty": !h.set,
	}
	if h.set {
		desc["data_type"] = fmt.Sprintf("%T", h.data)
	}
	return desc
}
