package tree

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/oy3o/sol"
	"github.com/oy3o/sol/amf3"
)

var (
	// ErrNotFound indicates no leaf matched the requested path.
	ErrNotFound = errors.New("tree: path not found")

	// ErrNotEditable indicates the value at a path cannot be set from text.
	ErrNotEditable = errors.New("tree: value is not editable")
)

// EditFunc returns the replacement for the leaf v at p. Returning v keeps it.
type EditFunc func(p Path, v sol.Value) (sol.Value, error)

// Edit returns a copy of pairs with fn applied to every leaf the filter lets
// through. Unsupported values are never passed to fn.
func Edit(pairs []sol.Pair, fn EditFunc, opts *Options) ([]sol.Pair, error) {
	return Walk(pairs, editor(fn), opts)
}

type editor EditFunc

func (e editor) Leaf(p Path, v sol.Value) (sol.Value, error) { return e(p, v) }
func (editor) Enter(Path, sol.Value) error                   { return nil }
func (editor) Leave(Path, sol.Value) error                   { return nil }
func (editor) Unsupported(Path, sol.Value) error             { return nil }

// SetAt replaces the leaf at path with text parsed by SetText. Paths are
// compared step by step, so a key "a.b" and the member b of a are distinct.
// Duplicate keys along the path are all updated.
func SetAt(pairs []sol.Pair, path Path, text string) ([]sol.Pair, error) {
	found := false
	out, err := Edit(pairs, func(p Path, v sol.Value) (sol.Value, error) {
		if !p.Equal(path) {
			return v, nil
		}
		found = true
		nv, err := SetText(v, text)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nv, nil
	}, nil)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return out, nil
}

// SetText parses text as a new value of the same variant as old.
func SetText(old sol.Value, text string) (sol.Value, error) {
	switch old.(type) {
	case sol.Number:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, err
		}
		return sol.Number(f), nil
	case sol.Boolean:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return nil, err
		}
		return sol.Boolean(b), nil
	case sol.String:
		return sol.String(text), nil
	case amf3.Boolean:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return nil, err
		}
		return amf3.Boolean(b), nil
	case amf3.Integer:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, err
		}
		return amf3.IntegerOf(n)
	case amf3.Double:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, err
		}
		return amf3.Double(f), nil
	case amf3.String:
		return amf3.String(text), nil
	case amf3.Date:
		t, err := time.Parse(time.RFC3339Nano, text)
		if err != nil {
			return nil, err
		}
		return amf3.DateOf(t), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotEditable, old)
}
