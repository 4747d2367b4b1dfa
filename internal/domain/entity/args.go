package entity

import (
	"fmt"
	"strconv"
)

// ArgKind is the expected kind of one declared capability argument.
type ArgKind int

const (
	ArgString ArgKind = iota
	ArgInt
	ArgFloat
	ArgStringList
)

func (k ArgKind) String() string {
	switch k {
	case ArgString:
		return "string"
	case ArgInt:
		return "int"
	case ArgFloat:
		return "float"
	case ArgStringList:
		return "string list"
	default:
		return "unknown"
	}
}

// ArgSpec declares one argument a capability reads: its key, the kind it must
// coerce to, and the value substituted when the key is absent.
type ArgSpec struct {
	Key     string
	Kind    ArgKind
	Default any
}

// ArgValues holds arguments already coerced against a capability's ArgSpecs.
// The typed getters are safe for any key that appeared in the specs.
type ArgValues map[string]any

func (v ArgValues) String(key string) string {
	s, _ := v[key].(string)
	return s
}

func (v ArgValues) Int(key string) int {
	n, _ := v[key].(int)
	return n
}

func (v ArgValues) Float(key string) float64 {
	f, _ := v[key].(float64)
	return f
}

func (v ArgValues) StringList(key string) []string {
	l, _ := v[key].([]string)
	return l
}

// CoerceArguments validates raw parsed arguments against the declared specs.
// Missing keys take the spec default; present keys are coerced to the declared
// kind. A value that cannot be coerced yields an error naming the key and the
// expected kind — callers report it as a failed outcome, never a crash.
func CoerceArguments(specs []ArgSpec, raw map[string]any) (ArgValues, error) {
	out := make(ArgValues, len(specs))
	for _, spec := range specs {
		val, ok := raw[spec.Key]
		if !ok {
			out[spec.Key] = spec.Default
			continue
		}
		coerced, err := coerceValue(spec.Kind, val)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", spec.Key, err)
		}
		out[spec.Key] = coerced
	}
	return out, nil
}

func coerceValue(kind ArgKind, val any) (any, error) {
	switch kind {
	case ArgString:
		if s, ok := val.(string); ok {
			return s, nil
		}
	case ArgInt:
		switch n := val.(type) {
		case float64:
			// JSON numbers decode as float64; truncate like the lenient
			// int() coercion the protocol has always allowed.
			return int(n), nil
		case int:
			return n, nil
		case string:
			parsed, err := strconv.Atoi(n)
			if err == nil {
				return parsed, nil
			}
		}
	case ArgFloat:
		switch f := val.(type) {
		case float64:
			return f, nil
		case int:
			return float64(f), nil
		case string:
			parsed, err := strconv.ParseFloat(f, 64)
			if err == nil {
				return parsed, nil
			}
		}
	case ArgStringList:
		list, ok := val.([]any)
		if !ok {
			break
		}
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected string list, got element %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected %s, got %T", kind, val)
}
