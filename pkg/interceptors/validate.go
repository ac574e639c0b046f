package interceptors

import (
	"github.com/agentstation/datakit/pkg/catalog"
	"github.com/agentstation/datakit/pkg/errors"
)

// Compile-time interface checks to ensure proper implementation.
var _ catalog.Interceptor = (*Validate)(nil)

// CheckFunc inspects a value flowing through the chain for the named
// resource and returns an error to reject it.
type CheckFunc func(name string, data any) error

// Validate rejects values failing a predicate. Saves are checked before
// reaching the handle; a failed check short-circuits without calling
// next. Loads are checked after the upstream result arrives. Either
// check may be nil, in which case that direction passes through.
type Validate struct {
	catalog.Base

	// Save is applied to outgoing values before they are forwarded.
	Save CheckFunc

	// Load is applied to incoming values before they are returned.
	Load CheckFunc
}

// OnSave checks the value and forwards it unchanged if accepted.
func (v *Validate) OnSave(name string, next catalog.SaveFunc, data any) error {
	if v.Save != nil {
		if err := v.Save(name, data); err != nil {
			return errors.WrapValidation(name, err)
		}
	}
	return next(data)
}

// OnLoad runs the rest of the chain and checks its result.
func (v *Validate) OnLoad(name string, next catalog.LoadFunc) (any, error) {
	res, err := next()
	if err != nil {
		return nil, err
	}
	if v.Load != nil {
		if err := v.Load(name, res); err != nil {
			return nil, errors.WrapValidation(name, err)
		}
	}
	return res, nil
}
