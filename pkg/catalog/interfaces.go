package catalog

// Handle provides raw load/save access to one named piece of data.
// Implementations own their storage and serialization; the catalog
// never inspects the values passing through.
type Handle interface {
	// Load reads the current value from the underlying storage.
	Load() (any, error)

	// Save writes a value to the underlying storage.
	Save(data any) error

	// Describe returns informational metadata about the handle for
	// identity and debugging. It is never consulted during dispatch.
	Describe() map[string]any
}

// Reader provides read access to catalog resources.
type Reader interface {
	// Load dispatches a load through the interceptor chain for name
	Load(name string) (any, error)

	// Describe returns the handle metadata for name
	Describe(name string) (map[string]any, error)

	// Exists reports whether a resource is registered under name
	Exists(name string) bool

	// Names returns the sorted names of all registered resources
	Names() []string
}

// Writer provides write and registration operations.
type Writer interface {
	// Save dispatches a save through the interceptor chain for name
	Save(name string, data any) error

	// Add registers a handle under name (upsert semantics)
	Add(name string, handle Handle)

	// AddInterceptor registers an interceptor globally or against
	// the given resource names
	AddInterceptor(v any, names ...string) error
}

// Copier provides catalog derivation.
type Copier interface {
	// ShallowCopy returns a derived catalog sharing handle and
	// interceptor instances but with independently mutable tables
	ShallowCopy() Catalog
}

// Catalog is the complete interface combining all catalog capabilities.
// This interface is composed of smaller, focused interfaces following
// the Interface Segregation Principle.
type Catalog interface {
	Reader
	Writer
	Copier
}
