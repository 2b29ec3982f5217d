package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// StringOrArray is a list of strings that may be written as a single string.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}
