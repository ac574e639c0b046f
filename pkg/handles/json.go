package handles

import (
	"encoding/json"
	"os"

	"github.com/agentstation/datakit/pkg/catalog"
	"github.com/agentstation/datakit/pkg/errors"
)

// Compile-time interface checks to ensure proper implementation.
var _ catalog.Handle = (*JSON)(nil)

// JSON is a Handle backed by a JSON document on disk.
type JSON struct {
	path string
}

// NewJSON creates a JSON handle for the given file path. The file is
// not touched until the first load or save.
func NewJSON(path string) *JSON {
	return &JSON{path: path}
}

// Load reads and unmarshals the file.
func (h *JSON) Load() (any, error) {
	raw, err := os.ReadFile(h.path)
	if err != nil {
		return nil, errors.WrapHandle("load", h.path, err)
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.WrapHandle("load", h.path, err)
	}
	return data, nil
}

// Save marshals the value and writes it to the file.
func (h *JSON) Save(data any) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errors.WrapHandle("save", h.path, err)
	}

	if err := os.WriteFile(h.path, raw, filePermissions); err != nil {
		return errors.WrapHandle("save", h.path, err)
	}
	return nil
}

// Describe reports the handle type and file path.
func (h *JSON) Describe() map[string]any {
	return map[string]any{
		"type": "json",
		"path": h.path,
	}
}
