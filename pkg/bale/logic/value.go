package logic

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind discriminates the payload held by a Value.
type Kind int

const (
	KindBool Kind = iota
	KindNumber
	KindString
)

// Value is a typed fact value. Rules conclude booleans in practice, but
// numeric and string conclusions are allowed, so equality has to be
// well-defined across all three kinds. Values of different kinds are
// never equal.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
}

// Bool wraps a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Number wraps a numeric value.
func Number(n float64) Value {
	return Value{kind: KindNumber, n: n}
}

// String wraps a string value.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Kind returns the value's kind.
func (v Value) Kind() Kind {
	return v.kind
}

// AsBool returns the boolean payload; ok is false for non-boolean values.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsNumber returns the numeric payload; ok is false for non-numeric values.
func (v Value) AsNumber() (float64, bool) {
	return v.n, v.kind == KindNumber
}

// AsString returns the string payload; ok is false for non-string values.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindNumber:
		return v.n == o.n
	default:
		return v.s == o.s
	}
}

// String renders the value for trace output.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.n, 'g', -1, 64)
	default:
		return v.s
	}
}

// FromAny converts a decoded YAML/JSON scalar into a Value.
// Supported inputs: bool, string, int, int64, float64.
func FromAny(raw any) (Value, error) {
	switch x := raw.(type) {
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case int:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case float64:
		return Number(x), nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", raw)
	}
}

// jsonValue is the persisted wire shape for a Value.
type jsonValue struct {
	Kind   string  `json:"kind"`
	Bool   bool    `json:"bool,omitempty"`
	Number float64 `json:"number,omitempty"`
	String string  `json:"string,omitempty"`
}

// MarshalJSON encodes the value as a tagged object so that false/0/""
// survive a round trip unambiguously.
func (v Value) MarshalJSON() ([]byte, error) {
	jv := jsonValue{}
	switch v.kind {
	case KindBool:
		jv.Kind = "bool"
		jv.Bool = v.b
	case KindNumber:
		jv.Kind = "number"
		jv.Number = v.n
	default:
		jv.Kind = "string"
		jv.String = v.s
	}
	return json.Marshal(jv)
}

// UnmarshalJSON decodes a tagged value object.
func (v *Value) UnmarshalJSON(data []byte) error {
	var jv jsonValue
	if err := json.Unmarshal(data, &jv); err != nil {
		return err
	}
	switch jv.Kind {
	case "bool":
		*v = Bool(jv.Bool)
	case "number":
		*v = Number(jv.Number)
	case "string":
		*v = String(jv.String)
	default:
		return fmt.Errorf("unknown value kind %q", jv.Kind)
	}
	return nil
}
