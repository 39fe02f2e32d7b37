package schema

import "strings"

// RuleOptions are per-rule settings for the mapping form of a RuleSet.
// Message replaces the default message as is. Pattern carries the rule
// parameter when the key does not.
type RuleOptions struct {
	Message string `json:"message,omitempty" yaml:"message,omitempty" toml:"message,omitempty"`
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty" toml:"pattern,omitempty"`
}

// Entry is one (key, options) pair of a mapping RuleSet. Key is a rule
// name, optionally followed by a colon and a parameter ("max:", "max:5").
type Entry struct {
	Key     string
	Options RuleOptions
}

type setKind uint8

const (
	listSet setKind = iota
	mapSet
)

// RuleSet is the collection of rules applied to one value. It is either an
// ordered list of rule identifiers or an ordered mapping of rule keys to
// options; both keep declaration order.
type RuleSet struct {
	kind    setKind
	ids     []string
	entries []Entry
}

// List builds a RuleSet from rule identifiers such as "required" or "min:5".
func List(ids ...string) RuleSet {
	return RuleSet{kind: listSet, ids: ids}
}

// Map builds a RuleSet from ordered entries.
func Map(entries ...Entry) RuleSet {
	return RuleSet{kind: mapSet, entries: entries}
}

func (s RuleSet) IsMap() bool {
	return s.kind == mapSet
}

func (s RuleSet) Len() int {
	if s.kind == mapSet {
		return len(s.entries)
	}
	return len(s.ids)
}

// Identifier returns the raw text of the i-th rule: the list element or the mapping key.
func (s RuleSet) Identifier(i int) string {
	if s.kind == mapSet {
		return s.entries[i].Key
	}
	return s.ids[i]
}

// Entries returns the rules as mapping entries. List identifiers become
// entries with empty options.
func (s RuleSet) Entries() []Entry {
	if s.kind == mapSet {
		return append([]Entry(nil), s.entries...)
	}
	entries := make([]Entry, len(s.ids))
	for i, id := range s.ids {
		entries[i] = Entry{Key: id}
	}
	return entries
}

// Declares reports whether any rule in the set is named name.
func (s RuleSet) Declares(name string) bool {
	for i := 0; i < s.Len(); i++ {
		if s.nameAt(i) == name {
			return true
		}
	}
	return false
}

func (s RuleSet) nameAt(i int) string {
	name, _ := ParseIdentifier(s.Identifier(i))
	return name
}

// String renders the set the way it would be written in list form.
func (s RuleSet) String() string {
	parts := make([]string, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		id := s.Identifier(i)
		if s.kind == mapSet && s.entries[i].Options.Pattern != "" {
			id = strings.TrimSuffix(id, ":") + ":" + s.entries[i].Options.Pattern
		}
		parts = append(parts, id)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Rule is a resolved rule occurrence.
type Rule struct {
	Name       string
	Param      string
	Identifier string
	Options    RuleOptions
}

// Message picks the caller's message when set, otherwise the default one.
func (r Rule) Message(defaultMessage func(param string) string) string {
	if r.Options.Message != "" {
		return r.Options.Message
	}
	return defaultMessage(r.Param)
}
