package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// parseJSON builds a node tree from a JSON document. Key order is kept; a
// repeated key keeps its first position and takes its last value.
func parseJSON(data []byte) (*yaml.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	return decodeJSONValue(dec)
}

func decodeJSONValue(dec *json.Decoder) (*yaml.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", v)
		}
	case string:
		return jsonScalar("!!str", v), nil
	case json.Number:
		if strings.ContainsAny(v.String(), ".eE") {
			return jsonScalar("!!float", v.String()), nil
		}

		return jsonScalar("!!int", v.String()), nil
	case bool:
		return jsonScalar("!!bool", strconv.FormatBool(v)), nil
	case nil:
		return jsonScalar("!!null", "null"), nil
	default:
		return nil, fmt.Errorf("unexpected JSON token %v", tok)
	}
}

func decodeJSONObject(dec *json.Decoder) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	index := make(map[string]int)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}

		value, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}

		if i, dup := index[key]; dup {
			n.Content[i+1] = value
			continue
		}

		index[key] = len(n.Content)
		n.Content = append(n.Content, jsonScalar("!!str", key), value)
	}

	// closing '}'
	_, err := dec.Token()
	if err != nil {
		return nil, err
	}

	return n, nil
}

func decodeJSONArray(dec *json.Decoder) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}

	for dec.More() {
		value, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}

		n.Content = append(n.Content, value)
	}

	// closing ']'
	_, err := dec.Token()
	if err != nil {
		return nil, err
	}

	return n, nil
}

func jsonScalar(tag, value string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
	if tag == "!!str" {
		n.Style = yaml.DoubleQuotedStyle
	}

	return n
}
