package lattice

import (
	"fmt"
	"strings"
)

// Kind is the innermost, non-array part of a Type.
type Kind int

const (
	KindUnknown Kind = iota
	KindNull
	KindInt64
	KindFloat64
	KindString
	KindInconsistent
)

func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "Unknown"
	case KindNull:
		return "Null"
	case KindInt64:
		return "Int64"
	case KindFloat64:
		return "Float64"
	case KindString:
		return "String"
	case KindInconsistent:
		return "Inconsistent"
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// Type is an element of the type lattice. A Type is Dims array constructors
// wrapped around a base Kind, so Array(Array(Int64)) is {KindInt64, 2}.
// Types are comparable with == and usable as map keys.
type Type struct {
	Kind Kind
	Dims int
}

var (
	Unknown      = Type{Kind: KindUnknown}
	Null         = Type{Kind: KindNull}
	Int64        = Type{Kind: KindInt64}
	Float64      = Type{Kind: KindFloat64}
	String       = Type{Kind: KindString}
	Inconsistent = Type{Kind: KindInconsistent}
)

// Array returns the type of an array whose elements have type elem.
func Array(elem Type) Type {
	return Type{Kind: elem.Kind, Dims: elem.Dims + 1}
}

// IsArray reports whether t is built with the array constructor.
func (t Type) IsArray() bool {
	return t.Dims > 0
}

// Elem returns the element type of an array type. ok is false for non-arrays.
func (t Type) Elem() (elem Type, ok bool) {
	if !t.IsArray() {
		return Type{}, false
	}
	return Type{Kind: t.Kind, Dims: t.Dims - 1}, true
}

func (t Type) String() string {
	var sb strings.Builder
	for i := 0; i < t.Dims; i++ {
		sb.WriteString("Array(")
	}
	sb.WriteString(t.Kind.String())
	for i := 0; i < t.Dims; i++ {
		sb.WriteByte(')')
	}
	return sb.String()
}

// ParseType parses the rendering produced by Type.String.
func ParseType(s string) (Type, error) {
	rest := strings.TrimSpace(s)
	dims := 0
	for strings.HasPrefix(rest, "Array(") {
		if !strings.HasSuffix(rest, ")") {
			return Type{}, fmt.Errorf("unbalanced parentheses in type %q", s)
		}
		rest = strings.TrimSpace(rest[len("Array(") : len(rest)-1])
		dims++
	}

	for k := KindUnknown; k <= KindInconsistent; k++ {
		if rest == k.String() {
			return Type{Kind: k, Dims: dims}, nil
		}
	}

	return Type{}, fmt.Errorf("unknown type %q", s)
}
