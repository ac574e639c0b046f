package interceptors

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/datakit/pkg/catalog"
	"github.com/agentstation/datakit/pkg/logging"
)

// Compile-time interface checks to ensure proper implementation.
var _ catalog.Interceptor = (*Timing)(nil)

// Timing accumulates per-resource load/save durations and logs each
// observation at debug level. Totals are safe to read concurrently.
type Timing struct {
	logger *zerolog.Logger

	mu     sync.Mutex
	totals map[string]time.Duration
}

// NewTiming creates a Timing interceptor. A nil logger falls back to
// the default logger.
func NewTiming(logger *zerolog.Logger) *Timing {
	if logger == nil {
		logger = logging.Default()
	}
	return &Timing{
		logger: logger,
		totals: make(map[string]time.Duration),
	}
}

// OnLoad times the rest of the chain.
func (t *Timing) OnLoad(name string, next catalog.LoadFunc) (any, error) {
	start := time.Now()
	res, err := next()
	t.record(name, "load", time.Since(start))
	return res, err
}

// OnSave times the rest of the chain.
func (t *Timing) OnSave(name string, next catalog.SaveFunc, data any) error {
	start := time.Now()
	err := next(data)
	t.record(name, "save", time.Since(start))
	return err
}

// Elapsed returns the accumulated duration spent in loads and saves of
// the named resource.
func (t *Timing) Elapsed(name string) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totals[name]
}

func (t *Timing) record(name, operation string, elapsed time.Duration) {
	t.mu.Lock()
	t.totals[name] += elapsed
	t.mu.Unlock()

	t.logger.Debug().
		Str("resource", name).
		Str("operation", operation).
		Dur("duration", elapsed).
		Msg("resource timing")
}
