// Package tsp - functional options for Engine.
//
// Contract:
//   - Options are functional (type Option func(*engineConfig)).
//   - Option constructors validate and PANIC on meaningless inputs; the
//     engine itself never fails at run time.
//   - newEngineConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   - logger        = log.NewNopLogger()
//   - delta         = false (every candidate is built and costed from scratch)
//   - maxIterations = 0     (unlimited; iterate to a local optimum)
package tsp

import "github.com/go-kit/log"

// Option customizes an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	logger        log.Logger
	delta         bool
	maxIterations int
}

func newEngineConfig(opts ...Option) engineConfig {
	cfg := engineConfig{
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger attaches a structured logger. The engine logs accepted steps and
// the end of each run at debug level, and multi-start summaries at info level.
// Panics on nil.
func WithLogger(l log.Logger) Option {
	if l == nil {
		panic("tsp: WithLogger(nil)")
	}
	return func(c *engineConfig) {
		c.logger = l
	}
}

// WithDeltaCosting enables O(1) evaluation of candidate exchanges through
// ExchangeDelta. Only candidates that look improving are materialized, and
// their recomputed cost decides acceptance, so results match full costing
// whenever weights are exactly representable (e.g. integers).
func WithDeltaCosting(on bool) Option {
	return func(c *engineConfig) {
		c.delta = on
	}
}

// WithMaxIterations caps the number of accepted improving steps per run;
// 0 means unlimited. Panics on a negative value.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic("tsp: WithMaxIterations(n<0)")
	}
	return func(c *engineConfig) {
		c.maxIterations = n
	}
}
