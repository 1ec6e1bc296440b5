package jtree

// isEmpty reports whether v is the "absent/invalid" sentinel: either a Go
// nil pointer or the shared None value. Both are treated the same way by
// every tree operation in this file, per spec.md §4.5/§4.6.
func isEmpty(v *Value) bool {
	return v == nil || v.tag == TagNone
}

// Equal reports the structural equality of a and b, per spec.md §4.5:
// true iff they are the same handle; otherwise false if exactly one is
// empty; otherwise their tags must match, and scalar payloads are compared
// by value. Object member order is ignored; duplicate names are compared
// by first-match lookup. Double and None comparisons deliberately always
// return false (no double equality is promised by the spec; two distinct
// None handles are never "equal," only identical ones are).
func Equal(a, b *Value) bool {
	if a == b {
		return true
	}
	if isEmpty(a) != isEmpty(b) {
		return false
	}
	if a.Type() != b.Type() {
		return false
	}
	switch a.Type() {
	case TagInteger:
		return a.integer == b.integer
	case TagBoolean:
		return a.boolean == b.boolean
	case TagNull:
		return true
	case TagString:
		return a.str == b.str
	case TagArray:
		if len(a.array) != len(b.array) {
			return false
		}
		for i := range a.array {
			if !Equal(a.array[i], b.array[i]) {
				return false
			}
		}
		return true
	case TagObject:
		if len(a.object) != len(b.object) {
			return false
		}
		for _, p := range a.object {
			if !Equal(p.Value, FindObjectField(b, p.Name)) {
				return false
			}
		}
		return true
	default: // TagDouble, TagNone
		return false
	}
}

// TypeEqual reports whether a and b have the same shape: same tags
// throughout, and for objects the same name sets with per-name schemas
// equal (order-insensitive). Scalar payloads are not compared. Per
// spec.md §4.5.
func TypeEqual(a, b *Value) bool {
	if a == b {
		return true
	}
	if isEmpty(a) != isEmpty(b) {
		return false
	}
	if a.Type() != b.Type() {
		return false
	}
	switch a.Type() {
	case TagArray:
		if len(a.array) != len(b.array) {
			return false
		}
		for i := range a.array {
			if !TypeEqual(a.array[i], b.array[i]) {
				return false
			}
		}
		return true
	case TagObject:
		if len(a.object) != len(b.object) {
			return false
		}
		for _, p := range a.object {
			bv := FindObjectField(b, p.Name)
			if isEmpty(bv) {
				return false
			}
			if !TypeEqual(p.Value, bv) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// FindObjectField performs a linear, first-match scan of v's pairs for
// name, returning the matching value or None() if v is not an object or no
// pair matches. Per spec.md §4.5, duplicate names are not de-duplicated by
// the parser; lookup always returns the first match.
func FindObjectField(v *Value, name string) *Value {
	if v.Type() != TagObject {
		return None()
	}
	for _, p := range v.object {
		if p.Name == name {
			return p.Value
		}
	}
	return None()
}

// AllArrayType reports whether v is an array and every one of its elements
// has tag t. Per spec.md §4.5.
func AllArrayType(t Tag, v *Value) bool {
	if v.Type() != TagArray {
		return false
	}
	for _, c := range v.array {
		if c.Type() != t {
			return false
		}
	}
	return true
}

// Dup produces an independently-owned, isomorphic deep copy of v: scalar
// payloads are copied by value, strings share the original's immutable Go
// string, and containers are recreated with freshly-allocated child slices whose
// elements are themselves deep-copied. Per spec.md §4.5, TypeEqual(v,
// Dup(v)) always holds, and so does Equal(v, Dup(v)) unless v contains a
// double anywhere in its subtree. Destroying v afterward never affects the
// copy: the two trees share no mutable state (Go strings are immutable, so
// sharing their backing array is safe).
//
// Dup has no allocation-failure path: unlike Parse, spec.md §6 gives dup no
// settings/budget parameter, so this port does not impose one.
func Dup(v *Value) *Value {
	if isEmpty(v) {
		return None()
	}
	nv := &Value{tag: v.tag}
	switch v.tag {
	case TagBoolean:
		nv.boolean = v.boolean
	case TagInteger:
		nv.integer = v.integer
	case TagDouble:
		nv.double = v.double
	case TagString:
		nv.str = v.str
	case TagArray:
		nv.array = make([]*Value, len(v.array))
		for i, c := range v.array {
			child := Dup(c)
			child.parent = nv
			nv.array[i] = child
		}
	case TagObject:
		nv.object = make([]Pair, len(v.object))
		for i, p := range v.object {
			child := Dup(p.Value)
			child.parent = nv
			nv.object[i] = Pair{Name: p.Name, Value: child}
		}
	}
	return nv
}

// Destroy releases v's subtree. Under Go's garbage collector there is no
// memory to reclaim by hand, but Destroy still walks the subtree
// iteratively with an explicit stack slice (no recursion, so the call stack
// stays bounded; the slice grows with the number of pending nodes),
// unlinking every child and parent reference so the
// subtree cannot be accidentally reused or walked after destruction.
// Destroying None, or a nil *Value, is a no-op.
func Destroy(v *Value) {
	if isEmpty(v) {
		return
	}
	stack := []*Value{v}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch n.tag {
		case TagArray:
			stack = append(stack, n.array...)
			n.array = nil
		case TagObject:
			for _, p := range n.object {
				stack = append(stack, p.Value)
			}
			n.object = nil
		}
		n.parent = nil
		n.tag = TagNone
	}
}

// FromBool constructs a boolean value. Per spec.md §6, constructors return
// a by-value Value (not heap-owned, never destroyed) rather than a pointer
// into the parser's tree.
func FromBool(b bool) Value { return Value{tag: TagBoolean, boolean: b} }

// FromInt constructs an integer value.
func FromInt(i int64) Value { return Value{tag: TagInteger, integer: i} }

// FromReal constructs a double value.
func FromReal(d float64) Value { return Value{tag: TagDouble, double: d} }

// FromString constructs a string value. Go strings are immutable, so
// converting the argument to a string already yields a caller-owned copy
// independent of any backing array the caller continues to hold.
func FromString(s string) Value { return Value{tag: TagString, str: s} }
