package columns

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"csvcube/internal/common"
)

// Entry is one title -> raw configuration pair of a Mapping.
type Entry struct {
	Title string
	Raw   any
}

// Mapping is an ordered table of raw column configurations keyed by column
// title. Document order is preserved so output is deterministic.
type Mapping struct {
	entries []Entry
	index   map[string]int
}

// NewMapping builds a Mapping from entries. A repeated title replaces the
// earlier entry's configuration but keeps its position.
func NewMapping(entries ...Entry) Mapping {
	var m Mapping

	for _, e := range entries {
		m.set(e.Title, e.Raw)
	}

	return m
}

func (m *Mapping) set(title string, raw any) {
	if m.index == nil {
		m.index = make(map[string]int)
	}

	if i, ok := m.index[title]; ok {
		m.entries[i].Raw = raw
		return
	}

	m.index[title] = len(m.entries)
	m.entries = append(m.entries, Entry{Title: title, Raw: raw})
}

// Lookup returns the raw configuration for title and whether it is present.
func (m Mapping) Lookup(title string) (any, bool) {
	i, ok := m.index[title]
	if !ok {
		return nil, false
	}

	return m.entries[i].Raw, true
}

// Titles returns the configured titles in document order.
func (m Mapping) Titles() []string {
	titles := make([]string, len(m.entries))
	for i, e := range m.entries {
		titles[i] = e.Title
	}

	return titles
}

// Len returns the number of configured titles.
func (m Mapping) Len() int {
	return len(m.entries)
}

// Clone returns a deep copy of m, including every raw configuration value.
func (m Mapping) Clone() Mapping {
	var out Mapping

	for _, e := range m.entries {
		out.set(e.Title, common.DeepCopy(e.Raw))
	}

	return out
}

// UnmarshalYAML implements custom YAML unmarshaling for Mapping.
// Accepts a mapping of title -> raw config, null, or an empty sequence.
func (m *Mapping) UnmarshalYAML(node *yaml.Node) error {
	*m = Mapping{}

	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			var title string

			err := node.Content[i].Decode(&title)
			if err != nil {
				return fmt.Errorf("invalid column title: %w", err)
			}

			var raw any

			err = node.Content[i+1].Decode(&raw)
			if err != nil {
				return fmt.Errorf("invalid configuration for column %q: %w", title, err)
			}

			m.set(title, raw)
		}

		return nil

	case yaml.SequenceNode:
		if len(node.Content) > 0 {
			return errors.New("columns must be a mapping of column title to configuration")
		}

		return nil

	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil
		}

		return fmt.Errorf("expected mapping of columns, got %q", node.Value)

	default:
		return fmt.Errorf("expected mapping of columns, got %v", node.Kind)
	}
}
