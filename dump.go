package jtree

import (
	"io"
	"strconv"
)

// Dump writes a compact, JSON-like rendering of v to w: objects as
// {"name":value,...}, arrays as [value,...], strings as "bytes" with no
// re-escaping, numbers via default textual formatting, booleans as
// true/false, and null as null. Per spec.md §4.7, Dump is a contract-only
// diagnostic collaborator: it is not required to round-trip through Parse,
// and None is rendered as a fixed placeholder rather than failing, since a
// debug dump should never itself panic on an absent value.
func Dump(w io.Writer, v *Value) error {
	ww := &dumpWriter{w: w}
	ww.dump(v)
	return ww.err
}

type dumpWriter struct {
	w   io.Writer
	err error
}

func (d *dumpWriter) write(s string) {
	if d.err != nil {
		return
	}
	_, d.err = io.WriteString(d.w, s)
}

func (d *dumpWriter) dump(v *Value) {
	if d.err != nil {
		return
	}
	switch v.Type() {
	case TagNone:
		d.write("<none>")
	case TagNull:
		d.write("null")
	case TagBoolean:
		if v.boolean {
			d.write("true")
		} else {
			d.write("false")
		}
	case TagInteger:
		d.write(strconv.FormatInt(v.integer, 10))
	case TagDouble:
		d.write(strconv.FormatFloat(v.double, 'g', -1, 64))
	case TagString:
		d.write(`"`)
		d.write(v.str)
		d.write(`"`)
	case TagArray:
		d.write("[")
		for i, c := range v.array {
			if i > 0 {
				d.write(",")
			}
			d.dump(c)
		}
		d.write("]")
	case TagObject:
		d.write("{")
		for i, p := range v.object {
			if i > 0 {
				d.write(",")
			}
			d.write(`"`)
			d.write(p.Name)
			d.write(`":`)
			d.dump(p.Value)
		}
		d.write("}")
	}
}
