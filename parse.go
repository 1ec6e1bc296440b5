package jtree

import (
	"io"
)

// Parse parses data as a single JSON document using default settings (no
// memory ceiling, strict comma handling) and returns its root value.
func Parse(data []byte) (*Value, error) {
	return ParseWithSettings(data, Settings{})
}

// ParseString parses s as a single JSON document using default settings.
func ParseString(s string) (*Value, error) {
	return Parse([]byte(s))
}

// ParseReader reads r to completion and parses the result as a single JSON
// document using default settings.
func ParseReader(r io.Reader) (*Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// ParseWithSettings parses data as a single JSON document under the given
// Settings. This is the Go rendering of spec.md §6's parse_ex: a caller
// configures a memory ceiling and/or relaxed-comma tolerance via Settings,
// and on failure gets back an error that errors.As can unpack into
// *ParseError for a line:column diagnostic (spec.md §4.2).
//
// ParseWithSettings runs exactly two bounded passes over data (spec.md
// §4.4): a sizing pass that computes, for every value, its tag and (for
// containers and strings) its exact size, followed by a filling pass that
// issues one precisely-sized allocation per container or string instead of
// growing one incrementally. The filling pass reserves every value record,
// container slice and string buffer from the budget façade described in
// spec.md §4.1; the sizing pass's stub slice is not counted against it.
func ParseWithSettings(data []byte, settings Settings) (*Value, error) {
	stubs, err := runSizePass(data, settings)
	if err != nil {
		return nil, err
	}
	if len(stubs) == 0 {
		return nil, newParseError(KindSyntax, 1, 1, "Unknown value")
	}

	b := newBudget(settings.MaxMemory)
	root, err := runFillPass(data, settings, stubs, b)
	if err != nil {
		return nil, err
	}
	return root, nil
}
