// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serialize

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Standard YAML 1.2 scalar tags.
const (
	tagNull  = "!!null"
	tagBool  = "!!bool"
	tagInt   = "!!int"
	tagFloat = "!!float"
	tagStr   = "!!str"
)

const yamlIndent = 2

// ToYAML renders data as block-style YAML with 2-space indentation after
// normalizing every leaf with [NormalizeScalar].
//
// Scalars are emitted with explicit standard tags instead of relying on the
// encoder's type guessing: booleans are always lowercase true/false, and a
// string that looks like another type (for example "true" or "42") is
// quoted. [Record] keys keep their insertion order.
func ToYAML(data any) (string, error) {
	node, err := toNode(normalize(data))
	if err != nil {
		return "", fmt.Errorf("error encoding yaml: %w", err)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)

	if err := enc.Encode(node); err != nil {
		return "", fmt.Errorf("error encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("error encoding yaml: %w", err)
	}

	return buf.String(), nil
}

// toNode builds the yaml node of an already normalized value.
func toNode(v any) (*yaml.Node, error) {
	switch x := v.(type) {
	case nil:
		return scalar(tagNull, "null"), nil
	case bool:
		return scalar(tagBool, strconv.FormatBool(x)), nil
	case string:
		return scalar(tagStr, x), nil
	case int:
		return scalar(tagInt, strconv.FormatInt(int64(x), 10)), nil
	case int8:
		return scalar(tagInt, strconv.FormatInt(int64(x), 10)), nil
	case int16:
		return scalar(tagInt, strconv.FormatInt(int64(x), 10)), nil
	case int32:
		return scalar(tagInt, strconv.FormatInt(int64(x), 10)), nil
	case int64:
		return scalar(tagInt, strconv.FormatInt(x, 10)), nil
	case uint:
		return scalar(tagInt, strconv.FormatUint(uint64(x), 10)), nil
	case uint8:
		return scalar(tagInt, strconv.FormatUint(uint64(x), 10)), nil
	case uint16:
		return scalar(tagInt, strconv.FormatUint(uint64(x), 10)), nil
	case uint32:
		return scalar(tagInt, strconv.FormatUint(uint64(x), 10)), nil
	case uint64:
		return scalar(tagInt, strconv.FormatUint(x, 10)), nil
	case float32:
		return scalar(tagFloat, formatFloat(float64(x), 32)), nil
	case float64:
		return scalar(tagFloat, formatFloat(x, 64)), nil
	case *Record:
		node := &yaml.Node{Kind: yaml.MappingNode}
		for _, key := range x.keys {
			if err := appendPair(node, key, x.values[key]); err != nil {
				return nil, err
			}
		}
		return node, nil
	case map[string]any:
		node := &yaml.Node{Kind: yaml.MappingNode}
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if err := appendPair(node, key, x[key]); err != nil {
				return nil, err
			}
		}
		return node, nil
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range x {
			child, err := toNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	}

	// named scalar kinds and anything the normalizer left untouched
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return toNode(rv.Bool())
	case reflect.String:
		return toNode(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return toNode(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return toNode(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return toNode(NormalizeScalar(rv.Float()))
	}

	node := new(yaml.Node)
	if err := node.Encode(v); err != nil {
		return nil, fmt.Errorf("unsupported value of type %T: %w", v, err)
	}

	return node, nil
}

func appendPair(node *yaml.Node, key string, value any) error {
	child, err := toNode(value)
	if err != nil {
		return err
	}
	node.Content = append(node.Content, scalar(tagStr, key), child)

	return nil
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// formatFloat renders f so that a YAML parser reads it back as a float:
// integral values keep a ".0" suffix and infinities use the YAML spelling.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}

	s := strconv.FormatFloat(f, 'g', -1, bitSize)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}

	return s
}
