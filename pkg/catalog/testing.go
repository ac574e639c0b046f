package catalog

// Test fixtures shared by this package's tests and by packages that
// build on the catalog. They mirror the observable behavior contracts:
// the handle records every raw load/save it sees, and the interceptors
// record and transform the values passing through them.

// Event is one recorded load or save observation.
type Event struct {
	Op   string // "load" or "save"
	Data any
}

// FakeHandle is an in-memory Handle that records every operation.
type FakeHandle struct {
	Data any
	Log  []Event
}

// NewFakeHandle creates a FakeHandle seeded with data.
func NewFakeHandle(data any) *FakeHandle {
	return &FakeHandle{Data: data}
}

// Load returns the stored value and records the observation.
func (h *FakeHandle) Load() (any, error) {
	h.Log = append(h.Log, Event{Op: "load", Data: h.Data})
	return h.Data, nil
}

// Save stores the value and records the observation.
func (h *FakeHandle) Save(data any) error {
	h.Log = append(h.Log, Event{Op: "save", Data: data})
	h.Data = data
	return nil
}

// Describe reports the stored value.
func (h *FakeHandle) Describe() map[string]any {
	return map[string]any{"data": h.Data}
}

// NoopInterceptor is a pure pass-through interceptor. Its observable
// effect must be indistinguishable from not being in the chain at all.
type NoopInterceptor struct {
	Base
}

// AddingInterceptor increments integer values by Delta on the way to
// the handle during saves and on the way back to the caller during
// loads, recording what it saw in each direction.
type AddingInterceptor struct {
	Delta int
	Log   []Event
}

// NewAddingInterceptor creates an AddingInterceptor with a delta of 1.
func NewAddingInterceptor() *AddingInterceptor {
	return &AddingInterceptor{Delta: 1}
}

// OnLoad records the upstream result and returns it incremented.
func (i *AddingInterceptor) OnLoad(_ string, next LoadFunc) (any, error) {
	res, err := next()
	if err != nil {
		return nil, err
	}
	i.Log = append(i.Log, Event{Op: "load", Data: res})
	return res.(int) + i.Delta, nil
}

// OnSave records the incoming value and forwards it incremented.
func (i *AddingInterceptor) OnSave(_ string, next SaveFunc, data any) error {
	i.Log = append(i.Log, Event{Op: "save", Data: data})
	return next(data.(int) + i.Delta)
}
