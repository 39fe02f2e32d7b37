package cont

import (
	"maps"
	"slices"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/michaelolof/fieldrules/schema"
)

// decodeTOML accepts arrays only: TOML tables are unordered, and rule order matters.
// Fields come out sorted by name.
func decodeTOML(data []byte) (*Document, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "parsing TOML rules"), ErrInvalidDocument)
	}

	doc := newDocument()
	for _, field := range slices.Sorted(maps.Keys(raw)) {
		items, ok := raw[field].([]any)
		if !ok {
			return nil, errors.WithHint(
				invalidf("field %q: rules must be an array", field),
				`write rules as ["required", "min:5"] or [{rule = "min", pattern = "5"}]`,
			)
		}

		set, err := tomlRuleSet(field, items)
		if err != nil {
			return nil, err
		}
		if err := doc.add(field, set); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

func tomlRuleSet(field string, items []any) (schema.RuleSet, error) {
	entries := make([]schema.Entry, 0, len(items))
	onlyIDs := true

	for i, item := range items {
		switch v := item.(type) {
		case string:
			entries = append(entries, schema.Entry{Key: v})
		case map[string]any:
			onlyIDs = false
			e, err := tomlEntry(field, i, v)
			if err != nil {
				return schema.RuleSet{}, err
			}
			entries = append(entries, e)
		default:
			return schema.RuleSet{}, invalidf("field %q: rule %d must be a string or a table", field, i)
		}
	}

	if onlyIDs {
		ids := make([]string, len(entries))
		for i, e := range entries {
			ids[i] = e.Key
		}
		return schema.List(ids...), nil
	}
	return schema.Map(entries...), nil
}

func tomlEntry(field string, i int, tbl map[string]any) (schema.Entry, error) {
	var e schema.Entry
	for _, name := range slices.Sorted(maps.Keys(tbl)) {
		val := tbl[name]
		switch name {
		case "rule":
			s, ok := val.(string)
			if !ok {
				return e, invalidf("field %q: rule %d: rule must be a string", field, i)
			}
			e.Key = s
		case "message":
			s, ok := val.(string)
			if !ok {
				return e, invalidf("field %q: rule %d: message must be a string", field, i)
			}
			e.Options.Message = s
		case "pattern":
			switch p := val.(type) {
			case string:
				e.Options.Pattern = p
			case int64:
				e.Options.Pattern = strconv.FormatInt(p, 10)
			case float64:
				e.Options.Pattern = strconv.FormatFloat(p, 'f', -1, 64)
			default:
				return e, invalidf("field %q: rule %d: pattern must be a string or a number", field, i)
			}
		default:
			return e, invalidf("field %q: rule %d has unknown option %q", field, i, name)
		}
	}

	if e.Key == "" {
		return e, invalidf("field %q: rule %d has no rule name", field, i)
	}
	return e, nil
}
