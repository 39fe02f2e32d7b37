package cont

import (
	"github.com/cockroachdb/errors"
	"github.com/valyala/fastjson"

	"github.com/michaelolof/fieldrules/schema"
	"github.com/michaelolof/fieldrules/utils"
)

var parserPool fastjson.ParserPool

// decodeJSON walks the document with Object.Visit, which keeps key order.
func decodeJSON(data []byte) (*Document, error) {
	p := parserPool.Get()
	defer parserPool.Put(p)

	root, err := p.ParseBytes(data)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "parsing JSON rules"), ErrInvalidDocument)
	}

	obj, err := root.Object()
	if err != nil {
		return nil, invalidf("top level must be an object of fields")
	}

	doc := newDocument()
	var visitErr error
	obj.Visit(func(key []byte, v *fastjson.Value) {
		if visitErr != nil {
			return
		}
		field := string(key)
		set, err := jsonRuleSet(field, v)
		if err != nil {
			visitErr = err
			return
		}
		visitErr = doc.add(field, set)
	})
	if visitErr != nil {
		return nil, visitErr
	}

	return doc, nil
}

func jsonRuleSet(field string, v *fastjson.Value) (schema.RuleSet, error) {
	switch v.Type() {
	case fastjson.TypeArray:
		items, _ := v.Array()
		ids := make([]string, 0, len(items))
		for i, item := range items {
			s, err := item.StringBytes()
			if err != nil {
				return schema.RuleSet{}, invalidf("field %q: rule %d must be a string", field, i)
			}
			ids = append(ids, string(s))
		}
		return schema.List(ids...), nil

	case fastjson.TypeObject:
		obj, _ := v.Object()
		entries := make([]schema.Entry, 0, obj.Len())
		var visitErr error
		obj.Visit(func(key []byte, rv *fastjson.Value) {
			if visitErr != nil {
				return
			}
			e, err := jsonEntry(field, string(key), rv)
			if err != nil {
				visitErr = err
				return
			}
			entries = append(entries, e)
		})
		if visitErr != nil {
			return schema.RuleSet{}, visitErr
		}
		return schema.Map(entries...), nil

	default:
		return schema.RuleSet{}, invalidf("field %q: rules must be a list or an object", field)
	}
}

func jsonEntry(field, key string, v *fastjson.Value) (schema.Entry, error) {
	if utils.IsInteger(key) {
		s, err := v.StringBytes()
		if err != nil {
			return schema.Entry{}, invalidf("field %q: positional rule %s must be a string", field, key)
		}
		return schema.Entry{Key: string(s)}, nil
	}

	switch v.Type() {
	case fastjson.TypeNull, fastjson.TypeTrue:
		return schema.Entry{Key: key}, nil
	case fastjson.TypeObject:
	default:
		return schema.Entry{}, invalidf("field %q: options of rule %q must be an object", field, key)
	}

	var opts schema.RuleOptions
	var optErr error
	obj, _ := v.Object()
	obj.Visit(func(name []byte, ov *fastjson.Value) {
		if optErr != nil {
			return
		}
		switch string(name) {
		case "message":
			s, err := ov.StringBytes()
			if err != nil {
				optErr = invalidf("field %q: message of rule %q must be a string", field, key)
				return
			}
			opts.Message = string(s)
		case "pattern":
			switch ov.Type() {
			case fastjson.TypeString:
				s, _ := ov.StringBytes()
				opts.Pattern = string(s)
			case fastjson.TypeNumber:
				opts.Pattern = string(ov.MarshalTo(nil))
			default:
				optErr = invalidf("field %q: pattern of rule %q must be a string or a number", field, key)
			}
		default:
			optErr = invalidf("field %q: rule %q has unknown option %q", field, key, name)
		}
	})
	if optErr != nil {
		return schema.Entry{}, optErr
	}

	return schema.Entry{Key: key, Options: opts}, nil
}
