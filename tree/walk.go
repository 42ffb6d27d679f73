// Package tree walks the value tree of a shared object, AMF0 and AMF3 alike.
//
// Walk is the single dispatch over every value shape. Rendering, YAML export
// and editing are visitors layered on top of it, and they all share the same
// key filter semantics: a filter decides which top-level pairs are visited,
// never which pairs are kept. Pairs the filter rejects come back unchanged.
package tree

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/oy3o/sol"
	"github.com/oy3o/sol/amf3"
)

// Step is one element of a Path: a key, or an index into the dense part of
// an AMF3 array.
type Step struct {
	Key   string
	Index int // -1 for keyed entries
}

// Keyed reports whether the step names a key rather than an index.
func (s Step) Keyed() bool { return s.Index < 0 }

// Path locates a value from the top-level pair list.
type Path []Step

// String renders p as dotted keys with bracketed indexes, e.g. "a.b[2].c".
// A '.', '[' or '\' inside a key is escaped with a backslash, so the result
// parses back to p with ParsePath.
func (p Path) String() string {
	var sb strings.Builder
	for i, s := range p {
		if !s.Keyed() {
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(s.Index))
			sb.WriteByte(']')
			continue
		}
		if i > 0 {
			sb.WriteByte('.')
		}
		for j := 0; j < len(s.Key); j++ {
			switch c := s.Key[j]; c {
			case '.', '[', '\\':
				sb.WriteByte('\\')
				sb.WriteByte(c)
			default:
				sb.WriteByte(c)
			}
		}
	}
	return sb.String()
}

// ParsePath is the inverse of Path.String.
func ParsePath(s string) (Path, error) {
	var (
		p       Path
		key     strings.Builder
		pending = true // a key is being read
	)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '.':
			if pending {
				p = append(p, Step{Key: key.String(), Index: -1})
				key.Reset()
			}
			pending = true
		case '[':
			if pending {
				p = append(p, Step{Key: key.String(), Index: -1})
				key.Reset()
				pending = false
			}
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: unclosed '[' at %d in %q", ErrBadPath, i, s)
			}
			n, err := strconv.Atoi(s[i+1 : i+end])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: bad index %q in %q", ErrBadPath, s[i+1:i+end], s)
			}
			p = append(p, Step{Index: n})
			i += end
		default:
			if !pending {
				return nil, fmt.Errorf("%w: expected '.' or '[' at %d in %q", ErrBadPath, i, s)
			}
			if c == '\\' {
				i++
				if i == len(s) {
					return nil, fmt.Errorf("%w: trailing escape in %q", ErrBadPath, s)
				}
				c = s[i]
			}
			key.WriteByte(c)
		}
	}
	if pending {
		p = append(p, Step{Key: key.String(), Index: -1})
	}
	return p, nil
}

// Equal reports whether p and q name the same location.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		a, b := p[i], q[i]
		switch {
		case a.Keyed() != b.Keyed():
			return false
		case a.Keyed() && a.Key != b.Key:
			return false
		case !a.Keyed() && a.Index != b.Index:
			return false
		}
	}
	return true
}

// Last returns the final step of p.
func (p Path) Last() Step {
	if len(p) == 0 {
		return Step{Index: -1}
	}
	return p[len(p)-1]
}

// child returns p extended by s without sharing p's backing array.
func (p Path) child(s Step) Path {
	return append(p[:len(p):len(p)], s)
}

// ErrBadPath indicates text that ParsePath cannot read.
var ErrBadPath = errors.New("tree: malformed path")

// Filter decides whether a top-level pair is visited.
type Filter func(key string) bool

// AcceptAll is the default Filter.
func AcceptAll(string) bool { return true }

// Contains accepts keys containing sub. An empty sub accepts everything.
func Contains(sub string) Filter {
	if sub == "" {
		return AcceptAll
	}
	return func(key string) bool { return strings.Contains(key, sub) }
}

// Options configures a walk. A nil *Options means defaults.
type Options struct {
	// Filter selects the top-level pairs to visit. Nil accepts all.
	Filter Filter
	// Indent is the per-level indentation of Render. Defaults to two spaces.
	Indent string
	// KeyStyle, if set, decorates keys in Render output.
	KeyStyle func(string) string
	// PlaceholderStyle, if set, decorates unsupported-value placeholders in Render output.
	PlaceholderStyle func(string) string
}

func (o *Options) filter() Filter {
	if o == nil || o.Filter == nil {
		return AcceptAll
	}
	return o.Filter
}

// Visitor receives the callbacks of Walk.
type Visitor interface {
	// Leaf visits a scalar and returns its replacement; returning v keeps it.
	Leaf(p Path, v sol.Value) (sol.Value, error)
	// Enter is called before the members of an object or array are walked.
	Enter(p Path, v sol.Value) error
	// Leave is called after the members of an object or array are walked.
	Leave(p Path, v sol.Value) error
	// Unsupported visits a value Walk cannot look into. It is never replaced.
	Unsupported(p Path, v sol.Value) error
}

// Walk visits pairs depth-first in order and returns a list with the same
// keys, order and cardinality in which every visited leaf is replaced by what
// the visitor returned. pairs itself is not modified.
func Walk(pairs []sol.Pair, v Visitor, opts *Options) ([]sol.Pair, error) {
	if pairs == nil {
		return nil, nil
	}
	filter := opts.filter()
	out := make([]sol.Pair, len(pairs))
	for i, p := range pairs {
		out[i] = p
		if !filter(p.Key) {
			continue
		}
		nv, err := walkValue(Path{{Key: p.Key, Index: -1}}, p.Value, v)
		if err != nil {
			return nil, err
		}
		out[i].Value = nv
	}
	return out, nil
}

func walkPairs(parent Path, pairs []sol.Pair, v Visitor) ([]sol.Pair, error) {
	if pairs == nil {
		return nil, nil
	}
	out := make([]sol.Pair, len(pairs))
	for i, p := range pairs {
		nv, err := walkValue(parent.child(Step{Key: p.Key, Index: -1}), p.Value, v)
		if err != nil {
			return nil, err
		}
		out[i] = p
		out[i].Value = nv
	}
	return out, nil
}

func walkValues(parent Path, values []sol.Value, v Visitor) ([]sol.Value, error) {
	if values == nil {
		return nil, nil
	}
	out := make([]sol.Value, len(values))
	for i, val := range values {
		nv, err := walkValue(parent.child(Step{Index: i}), val, v)
		if err != nil {
			return nil, err
		}
		out[i] = nv
	}
	return out, nil
}

func walkValue(p Path, val sol.Value, v Visitor) (sol.Value, error) {
	switch x := val.(type) {
	case sol.Number, sol.Boolean, sol.String,
		amf3.Undefined, amf3.Null, amf3.Boolean, amf3.Integer,
		amf3.Double, amf3.String, amf3.Date:
		return v.Leaf(p, val)

	case sol.Object:
		if err := v.Enter(p, val); err != nil {
			return nil, err
		}
		members, err := walkPairs(p, x, v)
		if err != nil {
			return nil, err
		}
		return sol.Object(members), v.Leave(p, val)

	case amf3.Object:
		if err := v.Enter(p, val); err != nil {
			return nil, err
		}
		entries, err := walkPairs(p, x.Entries, v)
		if err != nil {
			return nil, err
		}
		x.Entries = entries
		return x, v.Leave(p, val)

	case amf3.Array:
		if err := v.Enter(p, val); err != nil {
			return nil, err
		}
		assoc, err := walkPairs(p, x.Assoc, v)
		if err != nil {
			return nil, err
		}
		dense, err := walkValues(p, x.Dense, v)
		if err != nil {
			return nil, err
		}
		x.Assoc, x.Dense = assoc, dense
		return x, v.Leave(p, val)
	}
	return val, v.Unsupported(p, val)
}
