// Package catalog provides a named-resource catalog with a composable
// interception chain. A Catalog maps logical resource names to Handle
// implementations and lets callers wrap every load and save dispatched
// through it with ordered, pluggable interceptors, without modifying
// the handles themselves.
//
// Interceptors registered without target names are global: they apply
// to every resource, including ones added later. Interceptors targeted
// at specific names apply only to those resources, which must already
// exist at registration time. Per dispatch the effective chain is the
// global interceptors followed by the targeted ones, each group in
// registration order, with the first-registered interceptor outermost.
//
// Example usage:
//
//	cat, err := catalog.New(
//	    catalog.WithHandle("weather", handles.NewMemory()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := cat.Save("weather", 23.5); err != nil {
//	    log.Fatal(err)
//	}
//	value, err := cat.Load("weather")
//
// The catalog provides no isolation between concurrent registration and
// dispatch; callers that share a catalog across goroutines must
// serialize writes themselves.
package catalog

import (
	"slices"

	"github.com/rs/zerolog"

	"github.com/agentstation/datakit/pkg/errors"
)

// DeprecationNotice is the stable message emitted by AddInterceptor.
// Callers that need to detect the notice can match on this string.
const DeprecationNotice = "the interceptor API is deprecated and will be " +
	"removed in a future release; wrap the resource handle instead"

// Compile-time interface checks to ensure proper implementation.
var (
	_ Catalog = (*catalog)(nil)
	_ Reader  = (*catalog)(nil)
	_ Writer  = (*catalog)(nil)
	_ Copier  = (*catalog)(nil)
)

// catalog is the single concrete implementation of the Catalog interface.
type catalog struct {
	handles  *Handles
	global   []Interceptor
	targeted map[string][]Interceptor
	logger   *zerolog.Logger
}

// New creates a new catalog with the given options. Targeted
// interceptors supplied via WithInterceptors are validated eagerly
// against the handles supplied to the same call; an unknown name fails
// construction with a not-found error.
func New(opts ...Option) (Catalog, error) {
	options := catalogDefaults().apply(opts...)

	cat := &catalog{
		handles:  NewHandles(WithHandlesMap(options.handles)),
		targeted: make(map[string][]Interceptor),
		logger:   options.logger,
	}

	for name, chain := range options.interceptors {
		if !cat.handles.Exists(name) {
			return nil, errors.NewNotFoundError("resource", name)
		}
		cat.targeted[name] = slices.Clone(chain)
	}

	return cat, nil
}

// Empty creates an empty in-memory catalog. This is useful for tests
// or for callers that register handles imperatively.
func Empty() Catalog {
	return &catalog{
		handles:  NewHandles(),
		targeted: make(map[string][]Interceptor),
		logger:   catalogDefaults().logger,
	}
}

// Add registers a handle under name. An existing entry under the same
// name is overwritten silently.
func (cat *catalog) Add(name string, handle Handle) {
	cat.handles.Set(name, handle)
}

// AddInterceptor registers an interceptor. With no names it is appended
// to the global list and applies to every resource, present and future.
// With names it is appended to each name's targeted list; every name
// must already be registered, and an unknown name fails the whole call
// without attaching the interceptor anywhere.
//
// The value is checked against the Interceptor interface at runtime so
// dynamically-typed callers get a conformance error instead of a panic.
//
// Deprecated: the interceptor API will be removed in a future release.
// Each call emits DeprecationNotice through the catalog logger.
func (cat *catalog) AddInterceptor(v any, names ...string) error {
	cat.logger.Warn().
		Str("kind", "deprecated-API-usage").
		Msg(DeprecationNotice)

	interceptor, ok := v.(Interceptor)
	if !ok {
		return errors.NewInterceptorError(v, "must implement OnLoad and OnSave")
	}

	if len(names) == 0 {
		cat.global = append(cat.global, interceptor)
		return nil
	}

	// All-or-nothing: validate every name before touching the tables.
	for _, name := range names {
		if !cat.handles.Exists(name) {
			return errors.NewNotFoundError("resource", name)
		}
	}

	for _, name := range names {
		cat.targeted[name] = append(cat.targeted[name], interceptor)
	}
	return nil
}

// Load reads the named resource through its interceptor chain. Errors
// from the handle or any interceptor propagate to the caller unwrapped.
func (cat *catalog) Load(name string) (any, error) {
	handle, ok := cat.handles.Get(name)
	if !ok {
		return nil, errors.NewNotFoundError("resource", name)
	}

	cat.logger.Debug().
		Str("resource", name).
		Str("operation", "load").
		Msg("dispatching load")

	load := composeLoad(name, cat.chainFor(name), handle.Load)
	return load()
}

// Save writes data to the named resource through its interceptor chain.
// Every interceptor receives the value exactly as its outer neighbor
// forwarded it; errors propagate to the caller unwrapped.
func (cat *catalog) Save(name string, data any) error {
	handle, ok := cat.handles.Get(name)
	if !ok {
		return errors.NewNotFoundError("resource", name)
	}

	cat.logger.Debug().
		Str("resource", name).
		Str("operation", "save").
		Msg("dispatching save")

	save := composeSave(name, cat.chainFor(name), handle.Save)
	return save(data)
}

// Describe returns the handle metadata for name. The interceptor chain
// is not involved.
func (cat *catalog) Describe(name string) (map[string]any, error) {
	handle, ok := cat.handles.Get(name)
	if !ok {
		return nil, errors.NewNotFoundError("resource", name)
	}
	return handle.Describe(), nil
}

// Exists reports whether a resource is registered under name.
func (cat *catalog) Exists(name string) bool {
	return cat.handles.Exists(name)
}

// Names returns the sorted names of all registered resources.
func (cat *catalog) Names() []string {
	return cat.handles.Names()
}

// ShallowCopy returns a derived catalog. The handle map and both
// interceptor tables are fresh containers, so registrations on either
// catalog no longer affect the other; the Handle and Interceptor
// instances themselves are shared, so their internal state remains
// observable through both.
func (cat *catalog) ShallowCopy() Catalog {
	targeted := make(map[string][]Interceptor, len(cat.targeted))
	for name, chain := range cat.targeted {
		targeted[name] = slices.Clone(chain)
	}

	return &catalog{
		handles:  NewHandles(WithHandlesMap(cat.handles.Map())),
		global:   slices.Clone(cat.global),
		targeted: targeted,
		logger:   cat.logger,
	}
}
