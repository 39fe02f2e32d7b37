package cont

import (
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/michaelolof/fieldrules/schema"
	"github.com/michaelolof/fieldrules/utils"
)

// decodeYAML reads the document as a yaml.Node tree so mapping order survives.
func decodeYAML(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "parsing YAML rules"), ErrInvalidDocument)
	}

	doc := newDocument()
	if root.Kind == 0 || len(root.Content) == 0 {
		return doc, nil
	}

	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, invalidf("line %d: top level must be a mapping of fields", top.Line)
	}

	for i := 0; i+1 < len(top.Content); i += 2 {
		field := top.Content[i].Value
		set, err := yamlRuleSet(field, top.Content[i+1])
		if err != nil {
			return nil, err
		}
		if err := doc.add(field, set); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

func yamlRuleSet(field string, n *yaml.Node) (schema.RuleSet, error) {
	switch n.Kind {
	case yaml.SequenceNode:
		ids := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				return schema.RuleSet{}, invalidf("line %d: field %q: rules must be strings", item.Line, field)
			}
			ids = append(ids, item.Value)
		}
		return schema.List(ids...), nil

	case yaml.MappingNode:
		entries := make([]schema.Entry, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			e, err := yamlEntry(field, n.Content[i].Value, n.Content[i+1])
			if err != nil {
				return schema.RuleSet{}, err
			}
			entries = append(entries, e)
		}
		return schema.Map(entries...), nil

	default:
		return schema.RuleSet{}, invalidf("line %d: field %q: rules must be a list or a mapping", n.Line, field)
	}
}

func yamlEntry(field, key string, n *yaml.Node) (schema.Entry, error) {
	if utils.IsInteger(key) {
		if n.Kind != yaml.ScalarNode || n.Tag == "!!null" {
			return schema.Entry{}, invalidf("line %d: field %q: positional rule %s must be a string", n.Line, field, key)
		}
		return schema.Entry{Key: n.Value}, nil
	}

	switch {
	case n.Kind == yaml.ScalarNode && (n.Tag == "!!null" || (n.Tag == "!!bool" && n.Value == "true")):
		return schema.Entry{Key: key}, nil
	case n.Kind != yaml.MappingNode:
		return schema.Entry{}, invalidf("line %d: field %q: options of rule %q must be a mapping", n.Line, field, key)
	}

	var opts schema.RuleOptions
	for i := 0; i+1 < len(n.Content); i += 2 {
		name, val := n.Content[i].Value, n.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return schema.Entry{}, invalidf("line %d: field %q: option %q of rule %q must be a scalar", val.Line, field, name, key)
		}
		switch name {
		case "message":
			opts.Message = val.Value
		case "pattern":
			opts.Pattern = val.Value
		default:
			return schema.Entry{}, invalidf("line %d: field %q: rule %q has unknown option %q", val.Line, field, key, name)
		}
	}

	return schema.Entry{Key: key, Options: opts}, nil
}
