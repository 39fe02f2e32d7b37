package validators

import "github.com/cockroachdb/errors"

// Configuration errors. They describe a misuse of the rule table by the caller
// and are never reported as an invalid field value.
var (
	// ErrUnknownRule is returned when a rule name is not registered.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrMissingPredicate is returned when a registered rule has no Validate function.
	ErrMissingPredicate = errors.New("rule has no predicate")

	// ErrInvalidParam is returned when a rule parameter does not fit the rule's ParamKind.
	ErrInvalidParam = errors.New("invalid rule parameter")

	// ErrDuplicateRule is returned when a custom rule reuses a registered name.
	ErrDuplicateRule = errors.New("rule already registered")
)
