package schema

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/michaelolof/fieldrules/validators"
)

// ErrReport wraps a configuration error with the rule it came from.
type ErrReport struct {
	Err        error
	Rule       string
	Identifier string
	// Position is the index of the rule in its RuleSet, or -1 for a single rule.
	Position int
}

func (e *ErrReport) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("rule %d (%s): %s", e.Position+1, e.Identifier, e.Err.Error())
	}
	return fmt.Sprintf("rule %s: %s", e.Identifier, e.Err.Error())
}

func (e *ErrReport) Unwrap() error {
	return e.Err
}

func (e *ErrReport) RuleName() string {
	return e.Rule
}

func NewErrReport(position int, rule Rule, err error) *ErrReport {
	return &ErrReport{
		Err:        err,
		Rule:       rule.Name,
		Identifier: rule.Identifier,
		Position:   position,
	}
}

// IsConfigError reports whether err comes from a misconfigured rule rather
// than from the value being validated.
func IsConfigError(err error) bool {
	return errors.IsAny(err,
		validators.ErrUnknownRule,
		validators.ErrMissingPredicate,
		validators.ErrInvalidParam,
	)
}
