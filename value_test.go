package jtree

import (
	"fmt"
	"testing"
)

func TestTagString(t *testing.T) {
	for _, tc := range []struct {
		input    Tag
		expected string
	}{
		{TagNone, "none"},
		{TagObject, "object"},
		{TagArray, "array"},
		{TagInteger, "integer"},
		{TagDouble, "double"},
		{TagString, "string"},
		{TagBoolean, "boolean"},
		{TagNull, "null"},
		{numTags, "unknown"},
		{-1, "unknown"},
	} {
		t.Run(fmt.Sprintf("%v", tc.input), func(t *testing.T) {
			if got := tc.input.String(); got != tc.expected {
				t.Errorf("expected %q got %q", tc.expected, got)
			}
			if got := TypeToString(tc.input); got != tc.expected {
				t.Errorf("TypeToString: expected %q got %q", tc.expected, got)
			}
		})
	}
}

func TestNoneSentinel(t *testing.T) {
	if None().Type() != TagNone {
		t.Fatalf("None() should have tag TagNone")
	}
	if None() != None() {
		t.Fatalf("None() should return the same shared instance")
	}
}

func TestDiscriminators(t *testing.T) {
	for _, tc := range []struct {
		name     string
		v        *Value
		isString bool
		isNumber bool
		isArray  bool
		isObject bool
		isBool   bool
		isNull   bool
	}{
		{"string", &Value{tag: TagString}, true, false, false, false, false, false},
		{"integer", &Value{tag: TagInteger}, false, true, false, false, false, false},
		{"double", &Value{tag: TagDouble}, false, true, false, false, false, false},
		{"array", &Value{tag: TagArray}, false, false, true, false, false, false},
		{"object", &Value{tag: TagObject}, false, false, false, true, false, false},
		{"boolean", &Value{tag: TagBoolean}, false, false, false, false, true, false},
		{"null", &Value{tag: TagNull}, false, false, false, false, false, true},
		{"none", None(), false, false, false, false, false, false},
		{"nil", nil, false, false, false, false, false, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.IsString(); got != tc.isString {
				t.Errorf("IsString: expected %v got %v", tc.isString, got)
			}
			if got := tc.v.IsNumber(); got != tc.isNumber {
				t.Errorf("IsNumber: expected %v got %v", tc.isNumber, got)
			}
			if got := tc.v.IsArray(); got != tc.isArray {
				t.Errorf("IsArray: expected %v got %v", tc.isArray, got)
			}
			if got := tc.v.IsObject(); got != tc.isObject {
				t.Errorf("IsObject: expected %v got %v", tc.isObject, got)
			}
			if got := tc.v.IsBool(); got != tc.isBool {
				t.Errorf("IsBool: expected %v got %v", tc.isBool, got)
			}
			if got := tc.v.IsNull(); got != tc.isNull {
				t.Errorf("IsNull: expected %v got %v", tc.isNull, got)
			}
		})
	}
}

func TestLen(t *testing.T) {
	arr := &Value{tag: TagArray, array: []*Value{{tag: TagNull}, {tag: TagNull}}}
	if got := arr.Len(); got != 2 {
		t.Errorf("expected 2 got %d", got)
	}
	obj := &Value{tag: TagObject, object: []Pair{{Name: "a", Value: &Value{tag: TagNull}}}}
	if got := obj.Len(); got != 1 {
		t.Errorf("expected 1 got %d", got)
	}
	str := &Value{tag: TagString, str: "hello"}
	if got := str.Len(); got != 5 {
		t.Errorf("expected 5 got %d", got)
	}
	if got := None().Len(); got != 0 {
		t.Errorf("expected 0 got %d", got)
	}
}
