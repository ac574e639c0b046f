// Package interceptors provides ready-made Interceptor implementations
// for the datakit catalog: structured logging, timing profiles, a
// read-through load cache, and value validation.
package interceptors

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/datakit/pkg/catalog"
	"github.com/agentstation/datakit/pkg/logging"
)

// Compile-time interface checks to ensure proper implementation.
var _ catalog.Interceptor = (*Logging)(nil)

// Logging emits a structured log event for every load and save passing
// through it, including the outcome and elapsed time. Values are never
// logged, only resource names and metadata.
type Logging struct {
	logger *zerolog.Logger
}

// NewLogging creates a Logging interceptor. A nil logger falls back to
// the default logger.
func NewLogging(logger *zerolog.Logger) *Logging {
	if logger == nil {
		logger = logging.Default()
	}
	return &Logging{logger: logger}
}

// OnLoad logs the load after the rest of the chain has run.
func (l *Logging) OnLoad(name string, next catalog.LoadFunc) (any, error) {
	start := time.Now()
	res, err := next()

	l.event(err).
		Str("resource", name).
		Str("operation", "load").
		Dur("duration", time.Since(start)).
		Msg("resource load")

	return res, err
}

// OnSave logs the save after the rest of the chain has run.
func (l *Logging) OnSave(name string, next catalog.SaveFunc, data any) error {
	start := time.Now()
	err := next(data)

	l.event(err).
		Str("resource", name).
		Str("operation", "save").
		Dur("duration", time.Since(start)).
		Msg("resource save")

	return err
}

func (l *Logging) event(err error) *zerolog.Event {
	if err != nil {
		return l.logger.Error().Err(err)
	}
	return l.logger.Info()
}
