package tree

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/oy3o/sol"
	"github.com/oy3o/sol/amf3"
)

// Render writes an indented text form of pairs, wrapped in a block named root:
//
//	settings {
//	  volume = 0.8
//	  player = {
//	    name = "ada"
//	  }
//	}
func Render(w io.Writer, root string, pairs []sol.Pair, opts *Options) error {
	r := &renderer{w: w, indent: "  "}
	if opts != nil {
		if opts.Indent != "" {
			r.indent = opts.Indent
		}
		r.keyStyle = opts.KeyStyle
		r.placeholderStyle = opts.PlaceholderStyle
	}
	r.printf("%s {\n", root)
	if _, err := Walk(pairs, r, opts); err != nil {
		return err
	}
	r.printf("}\n")
	return r.err
}

// RenderDocument renders d under its root name.
func RenderDocument(w io.Writer, d *sol.Document, opts *Options) error {
	return Render(w, d.RootName, d.Pairs, opts)
}

type renderer struct {
	w                io.Writer
	indent           string
	keyStyle         func(string) string
	placeholderStyle func(string) string
	err              error
}

func (r *renderer) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// line starts an output line for the value at p: indentation, then the key
// for keyed entries. Dense array elements print bare.
func (r *renderer) line(p Path) string {
	prefix := strings.Repeat(r.indent, len(p))
	if step := p.Last(); step.Keyed() {
		key := step.Key
		if r.keyStyle != nil {
			key = r.keyStyle(key)
		}
		return prefix + key + " = "
	}
	return prefix
}

func (r *renderer) Leaf(p Path, v sol.Value) (sol.Value, error) {
	r.printf("%s%s\n", r.line(p), FormatScalar(v))
	return v, r.err
}

func (r *renderer) Enter(p Path, v sol.Value) error {
	switch x := v.(type) {
	case amf3.Array:
		r.printf("%s[\n", r.line(p))
	case amf3.Object:
		if x.ClassName != "" {
			r.printf("%s%s {\n", r.line(p), x.ClassName)
			break
		}
		r.printf("%s{\n", r.line(p))
	default:
		r.printf("%s{\n", r.line(p))
	}
	return r.err
}

func (r *renderer) Leave(p Path, v sol.Value) error {
	closing := "}"
	if _, ok := v.(amf3.Array); ok {
		closing = "]"
	}
	r.printf("%s%s\n", strings.Repeat(r.indent, len(p)), closing)
	return r.err
}

func (r *renderer) Unsupported(p Path, v sol.Value) error {
	placeholder := Placeholder(v)
	if r.placeholderStyle != nil {
		placeholder = r.placeholderStyle(placeholder)
	}
	r.printf("%s%s\n", r.line(p), placeholder)
	return r.err
}

// Placeholder is the text shown in place of a value Walk cannot look into.
func Placeholder(v sol.Value) string {
	if v == nil {
		return "<missing value>"
	}
	return fmt.Sprintf("<unsupported %T>", v)
}

// FormatScalar formats a leaf value the way Render prints it.
func FormatScalar(v sol.Value) string {
	switch x := v.(type) {
	case sol.Number:
		return formatFloat(float64(x))
	case sol.Boolean:
		return strconv.FormatBool(bool(x))
	case sol.String:
		return strconv.Quote(string(x))
	case amf3.Undefined:
		return "undefined"
	case amf3.Null:
		return "null"
	case amf3.Boolean:
		return strconv.FormatBool(bool(x))
	case amf3.Integer:
		return strconv.FormatInt(int64(x), 10)
	case amf3.Double:
		return formatFloat(float64(x))
	case amf3.String:
		return strconv.Quote(string(x))
	case amf3.Date:
		return x.Time().Format(time.RFC3339Nano)
	}
	return Placeholder(v)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
