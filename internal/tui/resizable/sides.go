package resizable

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sides says which edges of a pane carry a drag handle.
type Sides struct {
	Left   bool
	Right  bool
	Top    bool
	Bottom bool
}

// AllSides enables every handle.
func AllSides() Sides { return Sides{Left: true, Right: true, Top: true, Bottom: true} }

// Any reports whether at least one side is enabled.
func (s Sides) Any() bool { return s.Left || s.Right || s.Top || s.Bottom }

// Has reports whether side is enabled.
func (s Sides) Has(side Side) bool {
	switch side {
	case SideLeft:
		return s.Left
	case SideRight:
		return s.Right
	case SideTop:
		return s.Top
	case SideBottom:
		return s.Bottom
	default:
		return false
	}
}

// String lists the enabled sides, or "none".
func (s Sides) String() string {
	var names []string
	for _, side := range []Side{SideLeft, SideRight, SideTop, SideBottom} {
		if s.Has(side) {
			names = append(names, side.String())
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

// SpecKind tags the shape a Spec was written in.
type SpecKind int

// Spec shapes.
const (
	SpecUnset SpecKind = iota
	SpecBool
	SpecTuple
	SpecNamed
	SpecMalformed
)

// maxTupleLen is the number of positional entries a tuple can set.
const maxTupleLen = 4

// NamedSides is the record form of a Spec. Missing keys are false.
type NamedSides struct {
	Left   *bool `yaml:"left,omitempty"`
	Right  *bool `yaml:"right,omitempty"`
	Top    *bool `yaml:"top,omitempty"`
	Bottom *bool `yaml:"bottom,omitempty"`
}

// Spec is the declarative resizable-sides setting: unset, a boolean, a
// positional tuple (left, right, top, bottom) of up to four entries, or a
// named-sides record. It is resolved once into Sides with ResolveSides.
type Spec struct {
	kind  SpecKind
	value bool
	tuple []bool
	named NamedSides
}

// Unset returns the spec used when nothing was configured.
func Unset() Spec { return Spec{} }

// Bool returns a spec enabling or disabling every side.
func Bool(v bool) Spec { return Spec{kind: SpecBool, value: v} }

// Tuple returns a positional spec. Entries past the fourth are ignored.
func Tuple(vals ...bool) Spec {
	if len(vals) > maxTupleLen {
		vals = vals[:maxTupleLen]
	}
	t := make([]bool, len(vals))
	copy(t, vals)
	return Spec{kind: SpecTuple, tuple: t}
}

// Named returns a record spec.
func Named(n NamedSides) Spec { return Spec{kind: SpecNamed, named: n} }

// Malformed returns a spec that matched no known shape.
func Malformed() Spec { return Spec{kind: SpecMalformed} }

// Kind returns the shape of s.
func (s Spec) Kind() SpecKind { return s.kind }

// ResolveSides turns a spec into four flags. Unset enables everything,
// malformed input enables nothing.
func ResolveSides(s Spec) Sides {
	switch s.kind {
	case SpecUnset:
		return AllSides()
	case SpecBool:
		if s.value {
			return AllSides()
		}
		return Sides{}
	case SpecTuple:
		var v [maxTupleLen]bool
		copy(v[:], s.tuple)
		return Sides{Left: v[0], Right: v[1], Top: v[2], Bottom: v[3]}
	case SpecNamed:
		return Sides{
			Left:   deref(s.named.Left),
			Right:  deref(s.named.Right),
			Top:    deref(s.named.Top),
			Bottom: deref(s.named.Bottom),
		}
	default:
		return Sides{}
	}
}

func deref(b *bool) bool { return b != nil && *b }

// UnmarshalYAML decodes any of the accepted shapes. Shapes that match none
// of them decode to a malformed spec rather than an error.
func (s *Spec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			*s = Unset()
			return nil
		}
		var b bool
		if node.ShortTag() != "!!bool" || node.Decode(&b) != nil {
			*s = Malformed()
			return nil
		}
		*s = Bool(b)
	case yaml.SequenceNode:
		vals := make([]bool, 0, len(node.Content))
		for _, item := range node.Content {
			switch {
			case item.Kind == yaml.ScalarNode && item.ShortTag() == "!!null":
				vals = append(vals, false)
			case item.Kind == yaml.ScalarNode && item.ShortTag() == "!!bool":
				var b bool
				if err := item.Decode(&b); err != nil {
					*s = Malformed()
					return nil
				}
				vals = append(vals, b)
			default:
				*s = Malformed()
				return nil
			}
		}
		*s = Tuple(vals...)
	case yaml.MappingNode:
		var n NamedSides
		if err := node.Decode(&n); err != nil {
			*s = Malformed()
			return nil
		}
		*s = Named(n)
	default:
		*s = Malformed()
	}
	return nil
}

// MarshalYAML writes the spec back in the shape it was read.
func (s Spec) MarshalYAML() (interface{}, error) {
	switch s.kind {
	case SpecBool:
		return s.value, nil
	case SpecTuple:
		return s.tuple, nil
	case SpecNamed:
		return s.named, nil
	default:
		return nil, nil
	}
}

// ParseSpec reads the command-line form: "true"/"false", a comma-separated
// boolean tuple ("true,false,true"), or a comma-separated list of side names
// ("left,bottom"). Anything else is malformed.
func ParseSpec(raw string) Spec {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Unset()
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return Bool(b)
	}

	parts := strings.Split(raw, ",")
	if vals, ok := parseBools(parts); ok {
		return Tuple(vals...)
	}

	t := true
	var n NamedSides
	for _, p := range parts {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "left":
			n.Left = &t
		case "right":
			n.Right = &t
		case "top":
			n.Top = &t
		case "bottom":
			n.Bottom = &t
		default:
			return Malformed()
		}
	}
	return Named(n)
}

func parseBools(parts []string) ([]bool, bool) {
	vals := make([]bool, 0, len(parts))
	for _, p := range parts {
		b, err := strconv.ParseBool(strings.TrimSpace(p))
		if err != nil {
			return nil, false
		}
		vals = append(vals, b)
	}
	return vals, true
}

// String renders the spec for logs and error messages.
func (s Spec) String() string {
	switch s.kind {
	case SpecUnset:
		return "unset"
	case SpecBool:
		return strconv.FormatBool(s.value)
	case SpecTuple:
		return fmt.Sprint(s.tuple)
	case SpecNamed:
		r := ResolveSides(s)
		return fmt.Sprintf("{left:%t right:%t top:%t bottom:%t}", r.Left, r.Right, r.Top, r.Bottom)
	default:
		return "malformed"
	}
}
