package schema

import (
	"github.com/rs/zerolog"

	"github.com/michaelolof/fieldrules/validators"
)

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry replaces the rule table used by the engine.
func WithRegistry(reg *validators.Registry) Option {
	return func(e *Engine) {
		if reg != nil {
			e.registry = reg
		}
	}
}

// WithValidators extends the current rule table with custom validators.
// A name clash is reported by New.
func WithValidators(extra map[string]validators.Validator) Option {
	return func(e *Engine) {
		if e.err != nil {
			return
		}
		e.registry, e.err = e.registry.With(extra)
	}
}

// WithLogger sets the logger used to trace rule evaluation.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}
