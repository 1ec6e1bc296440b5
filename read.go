package jtree

import "math"

// maxStringReadBytes bounds how much ReadIfString copies into a caller
// buffer, per spec.md §4.6 ("up to 256 bytes are copied").
const maxStringReadBytes = 256

// Each ReadIf* function is a safe, allocation-free narrowing extractor: it
// succeeds iff v is non-empty, has the tag the function requires, and (for
// bounded integer readers) the payload fits the destination's representable
// range. On failure the destination is left untouched. Per spec.md §4.6 and
// the bug-fixes SPEC_FULL.md's SUPPLEMENTED FEATURES item 5 calls out
// (ReadIfUint64 must use the full 64-bit payload, not a 32-bit cast).

func fitsInt(v int64, min, max int64) bool { return v >= min && v <= max }
func fitsUint(v int64, max uint64) bool {
	if v < 0 {
		return false
	}
	return uint64(v) <= max
}

// ReadIfInt reads v into *dst as a platform int (assumed 64-bit).
func ReadIfInt(dst *int, v *Value) bool {
	if v.Type() != TagInteger {
		return false
	}
	*dst = int(v.integer)
	return true
}

// ReadIfIntptr reads v into *dst as a platform intptr_t-equivalent.
func ReadIfIntptr(dst *int, v *Value) bool { return ReadIfInt(dst, v) }

// ReadIfUint reads v into *dst as a platform uint (assumed 64-bit).
func ReadIfUint(dst *uint, v *Value) bool {
	if v.Type() != TagInteger || v.integer < 0 {
		return false
	}
	*dst = uint(v.integer)
	return true
}

// ReadIfUintptr reads v into *dst as a platform uintptr_t-equivalent.
func ReadIfUintptr(dst *uint, v *Value) bool { return ReadIfUint(dst, v) }

// ReadIfSize reads v into *dst as a platform size_t-equivalent.
func ReadIfSize(dst *uint, v *Value) bool { return ReadIfUint(dst, v) }

// ReadIfInt8 reads v into *dst iff it fits in a signed 8-bit integer.
func ReadIfInt8(dst *int8, v *Value) bool {
	if v.Type() != TagInteger || !fitsInt(v.integer, math.MinInt8, math.MaxInt8) {
		return false
	}
	*dst = int8(v.integer)
	return true
}

// ReadIfInt16 reads v into *dst iff it fits in a signed 16-bit integer.
func ReadIfInt16(dst *int16, v *Value) bool {
	if v.Type() != TagInteger || !fitsInt(v.integer, math.MinInt16, math.MaxInt16) {
		return false
	}
	*dst = int16(v.integer)
	return true
}

// ReadIfInt32 reads v into *dst iff it fits in a signed 32-bit integer.
func ReadIfInt32(dst *int32, v *Value) bool {
	if v.Type() != TagInteger || !fitsInt(v.integer, math.MinInt32, math.MaxInt32) {
		return false
	}
	*dst = int32(v.integer)
	return true
}

// ReadIfInt64 reads v into *dst. Every value the parser can produce as a
// TagInteger already fits int64 (spec.md §9, "Number range"), so this
// reader never fails on range, only on tag mismatch or an empty value.
func ReadIfInt64(dst *int64, v *Value) bool {
	if v.Type() != TagInteger {
		return false
	}
	*dst = v.integer
	return true
}

// ReadIfUint8 reads v into *dst iff it fits in an unsigned 8-bit integer.
func ReadIfUint8(dst *uint8, v *Value) bool {
	if v.Type() != TagInteger || !fitsUint(v.integer, math.MaxUint8) {
		return false
	}
	*dst = uint8(v.integer)
	return true
}

// ReadIfUint16 reads v into *dst iff it fits in an unsigned 16-bit integer.
func ReadIfUint16(dst *uint16, v *Value) bool {
	if v.Type() != TagInteger || !fitsUint(v.integer, math.MaxUint16) {
		return false
	}
	*dst = uint16(v.integer)
	return true
}

// ReadIfUint32 reads v into *dst iff it fits in an unsigned 32-bit integer.
func ReadIfUint32(dst *uint32, v *Value) bool {
	if v.Type() != TagInteger || !fitsUint(v.integer, math.MaxUint32) {
		return false
	}
	*dst = uint32(v.integer)
	return true
}

// ReadIfUint64 reads v into *dst iff it is non-negative. This reader uses
// the full 64-bit payload, fixing the original source's 32-bit truncation
// bug (spec.md §9; SPEC_FULL.md's SUPPLEMENTED FEATURES item 5).
func ReadIfUint64(dst *uint64, v *Value) bool {
	if v.Type() != TagInteger || v.integer < 0 {
		return false
	}
	*dst = uint64(v.integer)
	return true
}

// ReadIfFloat reads v into *dst iff v is a double and its magnitude fits a
// float32 (including the zero/infinite cases math.MaxFloat32 bounds).
func ReadIfFloat(dst *float32, v *Value) bool {
	if v.Type() != TagDouble {
		return false
	}
	if math.Abs(v.double) > math.MaxFloat32 {
		return false
	}
	*dst = float32(v.double)
	return true
}

// ReadIfDouble reads v into *dst iff v is a double.
func ReadIfDouble(dst *float64, v *Value) bool {
	if v.Type() != TagDouble {
		return false
	}
	*dst = v.double
	return true
}

// ReadIfBool reads v into *dst iff v is a boolean.
func ReadIfBool(dst *bool, v *Value) bool {
	if v.Type() != TagBoolean {
		return false
	}
	*dst = v.boolean
	return true
}

// ReadIfString copies up to len(dst) bytes (and never more than
// maxStringReadBytes) of v's payload into dst, iff v is a string. It
// returns the number of bytes copied and whether v was a string at all; on
// failure dst is left untouched and n is 0.
func ReadIfString(dst []byte, v *Value) (n int, ok bool) {
	if v.Type() != TagString {
		return 0, false
	}
	limit := len(dst)
	if limit > maxStringReadBytes {
		limit = maxStringReadBytes
	}
	n = copy(dst[:limit], v.str)
	return n, true
}
