package validators

import (
	"maps"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/michaelolof/fieldrules/utils"
)

const defaultMessage = "Field is invalid"

// Registry is an immutable table of validators keyed by rule name.
// It is safe for concurrent use.
type Registry struct {
	entries map[string]Validator
}

// NewRegistry copies entries into a new Registry.
func NewRegistry(entries map[string]Validator) *Registry {
	return &Registry{entries: maps.Clone(entries)}
}

// With returns a new Registry holding the current rules plus extra.
// Redefining an existing rule is an error.
func (r *Registry) With(extra map[string]Validator) (*Registry, error) {
	next := maps.Clone(r.entries)
	if next == nil {
		next = make(map[string]Validator, len(extra))
	}

	for _, name := range slices.Sorted(maps.Keys(extra)) {
		if name == "" || strings.Contains(name, ":") {
			return nil, errors.Newf("invalid rule name %q", name)
		}
		if _, ok := next[name]; ok {
			return nil, errors.Wrapf(ErrDuplicateRule, "%q", name)
		}
		next[name] = extra[name]
	}

	return &Registry{entries: next}, nil
}

// Lookup returns the validator registered under name.
func (r *Registry) Lookup(name string) (Validator, error) {
	v, ok := r.entries[name]
	if !ok {
		return Validator{}, errors.WithHintf(
			errors.Wrapf(ErrUnknownRule, "%q", name),
			"registered rules: %s", strings.Join(r.Names(), ", "),
		)
	}
	if v.Validate == nil {
		return Validator{}, errors.Wrapf(ErrMissingPredicate, "%q", name)
	}
	return v, nil
}

func (r *Registry) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Names returns the registered rule names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.entries))
}

// CheckParam validates param against the validator's ParamKind.
func (v Validator) CheckParam(param string) error {
	switch v.Param {
	case NumberParam:
		if !utils.IsNumber(param) {
			return errors.Wrapf(ErrInvalidParam, "expected a number, got %q", param)
		}
	case CountParam:
		if !utils.IsCount(param) {
			return errors.Wrapf(ErrInvalidParam, "expected a non-negative integer, got %q", param)
		}
	}
	return nil
}

// Check validates the parameter, then runs the predicate on value.
// The returned error is always a configuration error.
func (v Validator) Check(val, param string) (bool, error) {
	if v.Validate == nil {
		return false, ErrMissingPredicate
	}
	if err := v.CheckParam(param); err != nil {
		return false, err
	}
	return v.Validate(val, param), nil
}

// DefaultMessage renders the validator's message for param.
func (v Validator) DefaultMessage(param string) string {
	if v.Message == nil {
		return defaultMessage
	}
	return v.Message(param)
}
