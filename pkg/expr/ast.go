package expr

import (
	"github.com/grafana/arrayinfer/pkg/lattice"
)

// ExprID identifies a node of an expression tree. IDs are assigned by the
// caller and must be unique within one tree.
type ExprID int

type Expr interface {
	ID() ExprID
	String() string
	__expr()
}

// **********************
// Literals
// **********************

type LiteralKind int

const (
	LiteralNull LiteralKind = iota
	LiteralInt64
	LiteralFloat64
	LiteralString
)

type Literal struct {
	Kind  LiteralKind
	Int   int64
	Float float64
	Str   string
}

func NewNullLiteral() Literal {
	return Literal{Kind: LiteralNull}
}

func NewInt64Literal(i int64) Literal {
	return Literal{Kind: LiteralInt64, Int: i}
}

func NewFloat64Literal(f float64) Literal {
	return Literal{Kind: LiteralFloat64, Float: f}
}

func NewStringLiteral(s string) Literal {
	return Literal{Kind: LiteralString, Str: s}
}

// Type maps a literal to its scalar type. Null maps to lattice.Null, never
// to lattice.Unknown.
func (l Literal) Type() lattice.Type {
	switch l.Kind {
	case LiteralInt64:
		return lattice.Int64
	case LiteralFloat64:
		return lattice.Float64
	case LiteralString:
		return lattice.String
	}
	return lattice.Null
}

// **********************
// Nodes
// **********************

type Lit struct {
	NodeID ExprID
	Value  Literal
}

func NewLit(id ExprID, v Literal) *Lit {
	return &Lit{NodeID: id, Value: v}
}

func (l *Lit) ID() ExprID { return l.NodeID }

// nolint: revive
func (*Lit) __expr() {}

// Array builds an array out of its arguments.
type Array struct {
	NodeID ExprID
	Args   []Expr
}

func NewArray(id ExprID, args ...Expr) *Array {
	return &Array{NodeID: id, Args: args}
}

func (a *Array) ID() ExprID { return a.NodeID }

// nolint: revive
func (*Array) __expr() {}

// ArrayConcat concatenates its arguments, which are expected to be arrays.
type ArrayConcat struct {
	NodeID ExprID
	Args   []Expr
}

func NewArrayConcat(id ExprID, args ...Expr) *ArrayConcat {
	return &ArrayConcat{NodeID: id, Args: args}
}

func (c *ArrayConcat) ID() ExprID { return c.NodeID }

// nolint: revive
func (*ArrayConcat) __expr() {}

// Args returns the children of e in order.
func Args(e Expr) []Expr {
	switch n := e.(type) {
	case *Array:
		return n.Args
	case *ArrayConcat:
		return n.Args
	}
	return nil
}

// Walk calls fn for e and every node below it, parents before children.
// Walking stops early when fn returns false.
func Walk(e Expr, fn func(Expr) bool) bool {
	if !fn(e) {
		return false
	}
	for _, arg := range Args(e) {
		if !Walk(arg, fn) {
			return false
		}
	}
	return true
}

// IDs returns the ID of every node of the tree in walk order.
func IDs(e Expr) []ExprID {
	var ids []ExprID
	Walk(e, func(n Expr) bool {
		ids = append(ids, n.ID())
		return true
	})
	return ids
}
