package catalog

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/datakit/pkg/logging"
)

// catalogOptions is a struct that contains the options for the catalog.
type catalogOptions struct {
	handles      map[string]Handle
	interceptors map[string][]Interceptor
	logger       *zerolog.Logger
}

// apply applies the given options to the catalog options.
func (c *catalogOptions) apply(opts ...Option) *catalogOptions {
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// catalogDefaults returns the default options for a catalog.
func catalogDefaults() *catalogOptions {
	return &catalogOptions{
		logger: logging.Default(),
	}
}

// Option configures a catalog.
type Option func(*catalogOptions)

// WithHandles seeds the catalog with an initial name to handle mapping.
func WithHandles(handles map[string]Handle) Option {
	return func(c *catalogOptions) {
		if c.handles == nil {
			c.handles = make(map[string]Handle, len(handles))
		}
		for name, handle := range handles {
			c.handles[name] = handle
		}
	}
}

// WithHandle seeds the catalog with a single named handle.
func WithHandle(name string, handle Handle) Option {
	return func(c *catalogOptions) {
		if c.handles == nil {
			c.handles = make(map[string]Handle)
		}
		c.handles[name] = handle
	}
}

// WithInterceptors seeds the catalog with targeted interceptors. Every
// name in the mapping must also be present in the handles supplied to
// the same New call, or construction fails.
func WithInterceptors(interceptors map[string][]Interceptor) Option {
	return func(c *catalogOptions) {
		if c.interceptors == nil {
			c.interceptors = make(map[string][]Interceptor, len(interceptors))
		}
		for name, chain := range interceptors {
			c.interceptors[name] = append(c.interceptors[name], chain...)
		}
	}
}

// WithLogger sets the logger used for dispatch tracing and the
// deprecation notice emitted by AddInterceptor.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *catalogOptions) {
		if logger != nil {
			c.logger = logger
		}
	}
}
