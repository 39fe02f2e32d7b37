package schema

import (
	"github.com/rs/zerolog"

	"github.com/michaelolof/fieldrules/utils"
	"github.com/michaelolof/fieldrules/validators"
)

// RuleResult is the outcome of a single rule. Message is filled even when
// the rule passes.
type RuleResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// Result is the outcome of a whole RuleSet. Error is empty when Valid is true.
type Result struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// Engine evaluates rules against a registry. It holds no per-call state and
// is safe for concurrent use.
type Engine struct {
	registry *validators.Registry
	logger   zerolog.Logger
	err      error
}

// New builds an Engine over validators.Default unless an option says otherwise.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		registry: validators.Default,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.err != nil {
		return nil, e.err
	}
	return e, nil
}

// MustNew is New for package-level engines; it panics on a bad option.
func MustNew(opts ...Option) *Engine {
	e, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return e
}

var defaultEngine = MustNew()

// EvaluateRule evaluates one rule identifier with the default engine.
func EvaluateRule(identifier, val string, opts *RuleOptions) (RuleResult, error) {
	return defaultEngine.EvaluateRule(identifier, val, opts)
}

// EvaluateRuleSet evaluates a whole rule set with the default engine.
func EvaluateRuleSet(val string, set RuleSet) (Result, error) {
	return defaultEngine.EvaluateRuleSet(val, set)
}

func (e *Engine) Registry() *validators.Registry {
	return e.registry
}

// EvaluateRule checks val against a single rule identifier. opts may be nil.
// Configuration errors are returned as *ErrReport.
func (e *Engine) EvaluateRule(identifier, val string, opts *RuleOptions) (RuleResult, error) {
	entry := Entry{Key: identifier}
	if opts != nil {
		entry.Options = *opts
	}

	rule, err := ResolveEntry(entry)
	if err != nil {
		return RuleResult{}, NewErrReport(-1, rule, err)
	}

	res, err := e.evaluate(rule, val)
	if err != nil {
		return RuleResult{}, NewErrReport(-1, rule, err)
	}
	return res, nil
}

// EvaluateRuleSet checks val against every rule of set in declaration order
// and reports the message of the first failing rule.
//
// A blank value is only checked against the set's required rules, after every
// rule of the set has been resolved; when there are none the field is
// optional and the value passes untouched.
func (e *Engine) EvaluateRuleSet(val string, set RuleSet) (Result, error) {
	blank := utils.IsBlank(val)
	if blank && !set.Declares(validators.RequiredRule) {
		e.logger.Trace().Str("rules", set.String()).Msg("optional field is blank, skipping rules")
		return Result{Valid: true}, nil
	}

	if blank {
		if _, err := Compile(set, e.registry); err != nil {
			return Result{}, err
		}
	}

	var failure *RuleResult
	for i := 0; i < set.Len() && failure == nil; i++ {
		if blank && set.nameAt(i) != validators.RequiredRule {
			continue
		}

		rule, err := set.Resolve(i)
		if err != nil {
			return Result{}, NewErrReport(i, rule, err)
		}

		res, err := e.evaluate(rule, val)
		if err != nil {
			return Result{}, NewErrReport(i, rule, err)
		}

		if !res.Valid {
			failure = &res
		}
	}

	if failure != nil {
		return Result{Valid: false, Error: failure.Message}, nil
	}
	return Result{Valid: true}, nil
}

// Check resolves and looks up every rule of set without evaluating it.
func (e *Engine) Check(set RuleSet) error {
	_, err := Compile(set, e.registry)
	return err
}

func (e *Engine) evaluate(rule Rule, val string) (RuleResult, error) {
	v, err := e.registry.Lookup(rule.Name)
	if err != nil {
		return RuleResult{}, err
	}

	ok, err := v.Check(val, rule.Param)
	if err != nil {
		return RuleResult{}, err
	}

	e.logger.Debug().
		Str("rule", rule.Name).
		Str("param", rule.Param).
		Bool("valid", ok).
		Msg("rule evaluated")

	return RuleResult{Valid: ok, Message: rule.Message(v.DefaultMessage)}, nil
}
