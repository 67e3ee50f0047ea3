// Package jsonx parses arbitrary JSON into a tagged value that preserves
// object member order, so a depth-first walk visits objects in document
// order. encoding/json's map decoding loses that order, which matters when
// the first matching object in a document wins.
package jsonx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

type Kind uint8

const (
	Null Kind = iota
	Bool
	Number
	String
	Object
	Array
)

// Member is one object entry, in document position.
type Member struct {
	Key   string
	Value Value
}

// Value is a single JSON value. Str carries the text of String and Number
// kinds; Members and Elems are populated for Object and Array respectively.
type Value struct {
	Kind    Kind
	Bool    bool
	Str     string
	Members []Member
	Elems   []Value
}

// Parse decodes a complete JSON document. Trailing non-whitespace data is an
// error.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := parseValue(dec)
	if err != nil {
		return Value{}, err
	}
	if dec.More() {
		return Value{}, errors.New("jsonx: trailing data after value")
	}
	return v, nil
}

func parseValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return Value{}, fmt.Errorf("jsonx: unexpected delimiter %q", t.String())
		}
	case string:
		return Value{Kind: String, Str: t}, nil
	case json.Number:
		return Value{Kind: Number, Str: t.String()}, nil
	case bool:
		return Value{Kind: Bool, Bool: t}, nil
	case nil:
		return Value{Kind: Null}, nil
	default:
		return Value{}, fmt.Errorf("jsonx: unexpected token %v", tok)
	}
}

func parseObject(dec *json.Decoder) (Value, error) {
	obj := Value{Kind: Object}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("jsonx: object key is %v, not a string", keyTok)
		}
		val, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}
		obj.Members = append(obj.Members, Member{Key: key, Value: val})
	}
	// consume '}'
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return obj, nil
}

func parseArray(dec *json.Decoder) (Value, error) {
	arr := Value{Kind: Array}
	for dec.More() {
		val, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}
		arr.Elems = append(arr.Elems, val)
	}
	// consume ']'
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return arr, nil
}

// Field returns the value of the first member with the given key.
func (v Value) Field(key string) (Value, bool) {
	if v.Kind != Object {
		return Value{}, false
	}
	for _, m := range v.Members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Text returns the textual form of scalar values: the string itself, the
// number literal, or "true"/"false". Objects, arrays and null yield "".
func (v Value) Text() string {
	switch v.Kind {
	case String, Number:
		return v.Str
	case Bool:
		if v.Bool {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

// Walk visits every object in the tree depth-first, in document order, and
// stops at the first object for which fn returns true. The matched object is
// returned; ok is false when nothing matched.
func Walk(v Value, fn func(obj Value) bool) (Value, bool) {
	switch v.Kind {
	case Object:
		if fn(v) {
			return v, true
		}
		for _, m := range v.Members {
			if match, ok := Walk(m.Value, fn); ok {
				return match, true
			}
		}
	case Array:
		for _, e := range v.Elems {
			if match, ok := Walk(e, fn); ok {
				return match, true
			}
		}
	}
	return Value{}, false
}
