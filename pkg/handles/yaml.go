package handles

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/datakit/pkg/catalog"
	"github.com/agentstation/datakit/pkg/errors"
)

// filePermissions is the mode used for files written by file handles.
const filePermissions = 0o644

// Compile-time interface checks to ensure proper implementation.
var _ catalog.Handle = (*YAML)(nil)

// YAML is a Handle backed by a YAML document on disk.
type YAML struct {
	path string
}

// NewYAML creates a YAML handle for the given file path. The file is
// not touched until the first load or save.
func NewYAML(path string) *YAML {
	return &YAML{path: path}
}

// Load reads and unmarshals the file.
func (h *YAML) Load() (any, error) {
	raw, err := os.ReadFile(h.path)
	if err != nil {
		return nil, errors.WrapHandle("load", h.path, err)
	}

	var data any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, errors.WrapHandle("load", h.path, err)
	}
	return data, nil
}

// Save marshals the value and writes it to the file.
func (h *YAML) Save(data any) error {
	raw, err := yaml.Marshal(data)
	if err != nil {
		return errors.WrapHandle("save", h.path, err)
	}

	if err := os.WriteFile(h.path, raw, filePermissions); err != nil {
		return errors.WrapHandle("save", h.path, err)
	}
	return nil
}

// Describe reports the handle type and file path.
func (h *YAML) Describe() map[string]any {
	return map[string]any{
		"type": "yaml",
		"path": h.path,
	}
}
