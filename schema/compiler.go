package schema

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/michaelolof/fieldrules/validators"
)

// ParseIdentifier splits a rule identifier on its first colon.
// "min:5" gives ("min", "5"), "email" gives ("email", "") and
// "match:Password|a:b" gives ("match", "Password|a:b").
func ParseIdentifier(id string) (name string, param string) {
	name, param, _ = strings.Cut(id, ":")
	return name, param
}

// ResolveEntry turns one entry into a Rule. The parameter comes from the key
// suffix or from Options.Pattern; supplying both is a configuration error.
func ResolveEntry(e Entry) (Rule, error) {
	name, param := ParseIdentifier(e.Key)
	rule := Rule{
		Name:       name,
		Param:      param,
		Identifier: e.Key,
		Options:    e.Options,
	}

	if e.Options.Pattern != "" {
		if param != "" {
			return rule, errors.Wrapf(validators.ErrInvalidParam,
				"parameter given both in %q and as pattern %q", e.Key, e.Options.Pattern)
		}
		rule.Param = e.Options.Pattern
	}

	return rule, nil
}

// Resolve returns the i-th rule of s.
func (s RuleSet) Resolve(i int) (Rule, error) {
	if s.kind == mapSet {
		return ResolveEntry(s.entries[i])
	}
	return ResolveEntry(Entry{Key: s.ids[i]})
}

// Compile resolves every rule of s and checks it against reg, so a rule set
// loaded from a file can be rejected before any value is seen.
func Compile(s RuleSet, reg *validators.Registry) ([]Rule, error) {
	rules := make([]Rule, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		rule, err := s.Resolve(i)
		if err != nil {
			return nil, NewErrReport(i, rule, err)
		}

		v, err := reg.Lookup(rule.Name)
		if err != nil {
			return nil, NewErrReport(i, rule, err)
		}

		if err := v.CheckParam(rule.Param); err != nil {
			return nil, NewErrReport(i, rule, err)
		}

		rules = append(rules, rule)
	}
	return rules, nil
}
