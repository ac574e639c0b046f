package catalog

// LoadFunc is the continuation handed to an Interceptor's OnLoad.
// Calling it runs the rest of the chain down to the handle's Load.
type LoadFunc func() (any, error)

// SaveFunc is the continuation handed to an Interceptor's OnSave.
// Calling it runs the rest of the chain down to the handle's Save.
type SaveFunc func(data any) error

// Interceptor wraps every load and save dispatched through a catalog.
// An interceptor may observe the value, transform what it forwards to
// next, or skip next entirely to short-circuit the operation.
//
// The catalog does not enforce how many times next is invoked.
// Well-behaved interceptors call it exactly once.
type Interceptor interface {
	// OnLoad wraps a load of the named resource. The value it returns
	// is what the next outer layer (ultimately the caller) receives.
	OnLoad(name string, next LoadFunc) (any, error)

	// OnSave wraps a save of the named resource. It receives the value
	// exactly as the next outer layer forwarded it and decides what to
	// pass on to next.
	OnSave(name string, next SaveFunc, data any) error
}

// Base is a pass-through Interceptor: it forwards every call unchanged.
// It is the identity element of chain composition and is meant to be
// embedded by interceptors that only specialize one side.
type Base struct{}

// OnLoad forwards to next unchanged.
func (Base) OnLoad(_ string, next LoadFunc) (any, error) {
	return next()
}

// OnSave forwards data to next unchanged.
func (Base) OnSave(_ string, next SaveFunc, data any) error {
	return next(data)
}
