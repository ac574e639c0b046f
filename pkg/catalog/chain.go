package catalog

// chainFor returns the interceptors that apply to name: the global list
// first, then the targeted list, each in registration order. The slice
// is built fresh per dispatch so composition never shares mutable state.
func (cat *catalog) chainFor(name string) []Interceptor {
	global := cat.global
	targeted := cat.targeted[name]
	if len(global)+len(targeted) == 0 {
		return nil
	}

	chain := make([]Interceptor, 0, len(global)+len(targeted))
	chain = append(chain, global...)
	chain = append(chain, targeted...)
	return chain
}

// composeLoad folds the chain into a single load function. The first
// interceptor in the chain becomes the outermost wrapper, so its return
// value is what the caller receives; terminal is the handle's own Load.
func composeLoad(name string, chain []Interceptor, terminal LoadFunc) LoadFunc {
	next := terminal
	for i := len(chain) - 1; i >= 0; i-- {
		interceptor, inner := chain[i], next
		next = func() (any, error) {
			return interceptor.OnLoad(name, inner)
		}
	}
	return next
}

// composeSave folds the chain into a single save function. Each layer
// receives the value its outer neighbor forwarded and decides what to
// hand to the next; terminal is the handle's own Save.
func composeSave(name string, chain []Interceptor, terminal SaveFunc) SaveFunc {
	next := terminal
	for i := len(chain) - 1; i >= 0; i-- {
		interceptor, inner := chain[i], next
		next = func(data any) error {
			return interceptor.OnSave(name, inner, data)
		}
	}
	return next
}
