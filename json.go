package main

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type JSONKind int

const (
	JSONNull JSONKind = iota
	JSONBool
	JSONNumber
	JSONString
	JSONArray
	JSONObject
)

// JSONValue is a tagged JSON value. A request with no JSON body carries a
// nil *JSONValue, which keeps "absent" distinct from JSON null.
type JSONValue struct {
	Kind   JSONKind
	Bool   bool
	Number json.Number
	Str    string
	Array  []*JSONValue
	Object map[string]*JSONValue
}

// ParseJSON decodes a complete JSON document. Trailing non-whitespace
// after the document is an error.
func ParseJSON(data []byte) (*JSONValue, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("Trailing data after JSON document")
	}
	return fromDecoded(raw), nil
}

func fromDecoded(raw interface{}) *JSONValue {
	switch v := raw.(type) {
	case nil:
		return &JSONValue{Kind: JSONNull}
	case bool:
		return &JSONValue{Kind: JSONBool, Bool: v}
	case json.Number:
		return &JSONValue{Kind: JSONNumber, Number: v}
	case string:
		return &JSONValue{Kind: JSONString, Str: v}
	case []interface{}:
		arr := make([]*JSONValue, len(v))
		for i, e := range v {
			arr[i] = fromDecoded(e)
		}
		return &JSONValue{Kind: JSONArray, Array: arr}
	case map[string]interface{}:
		obj := make(map[string]*JSONValue, len(v))
		for k, e := range v {
			obj[k] = fromDecoded(e)
		}
		return &JSONValue{Kind: JSONObject, Object: obj}
	}
	panic(fmt.Sprintf("unhandled decoded type %T", raw))
}

// Get returns the member value of an object, or nil for non-objects and
// missing keys.
func (v *JSONValue) Get(key string) *JSONValue {
	if v == nil || v.Kind != JSONObject {
		return nil
	}
	return v.Object[key]
}

func (v *JSONValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case JSONNull:
		return []byte("null"), nil
	case JSONBool:
		return json.Marshal(v.Bool)
	case JSONNumber:
		return []byte(v.Number.String()), nil
	case JSONString:
		return json.Marshal(v.Str)
	case JSONArray:
		if v.Array == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.Array)
	case JSONObject:
		return json.Marshal(v.Object)
	}
	return nil, fmt.Errorf("Invalid JSON kind: %d", v.Kind)
}
