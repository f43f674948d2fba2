// Package facts restates an expression tree as flat relations. It is the only
// place that recurses over the tree; inference works on the relations alone.
package facts

import (
	"cmp"
	"slices"

	"github.com/grafana/arrayinfer/pkg/expr"
	"github.com/grafana/arrayinfer/pkg/lattice"
)

// Lit is the relation Lit(id, type).
type Lit struct {
	ID   expr.ExprID
	Type lattice.Type
}

// Arg is the relation Arg(parent, child).
type Arg struct {
	Parent expr.ExprID
	Child  expr.ExprID
}

// Set holds the base relations of one tree with set semantics.
type Set struct {
	Lits    map[Lit]struct{}
	Arrays  map[expr.ExprID]struct{}
	Concats map[expr.ExprID]struct{}
	Args    map[Arg]struct{}
}

func NewSet() *Set {
	return &Set{
		Lits:    map[Lit]struct{}{},
		Arrays:  map[expr.ExprID]struct{}{},
		Concats: map[expr.ExprID]struct{}{},
		Args:    map[Arg]struct{}{},
	}
}

// Extract returns the base relations of the tree rooted at e.
func Extract(e expr.Expr) *Set {
	s := NewSet()

	switch n := e.(type) {
	case *expr.Lit:
		s.Lits[Lit{ID: n.NodeID, Type: n.Value.Type()}] = struct{}{}
		return s
	case *expr.Array:
		s.Arrays[n.NodeID] = struct{}{}
	case *expr.ArrayConcat:
		s.Concats[n.NodeID] = struct{}{}
	}

	for _, arg := range expr.Args(e) {
		s.Args[Arg{Parent: e.ID(), Child: arg.ID()}] = struct{}{}
		s.Union(Extract(arg))
	}
	return s
}

// Union adds every tuple of o to s.
func (s *Set) Union(o *Set) {
	for l := range o.Lits {
		s.Lits[l] = struct{}{}
	}
	for id := range o.Arrays {
		s.Arrays[id] = struct{}{}
	}
	for id := range o.Concats {
		s.Concats[id] = struct{}{}
	}
	for a := range o.Args {
		s.Args[a] = struct{}{}
	}
}

// Len is the total number of tuples across all relations.
func (s *Set) Len() int {
	return len(s.Lits) + len(s.Arrays) + len(s.Concats) + len(s.Args)
}

// SortedLits returns the Lit relation ordered by ID.
func (s *Set) SortedLits() []Lit {
	out := make([]Lit, 0, len(s.Lits))
	for l := range s.Lits {
		out = append(out, l)
	}
	slices.SortFunc(out, func(a, b Lit) int {
		if c := cmp.Compare(a.ID, b.ID); c != 0 {
			return c
		}
		return cmp.Compare(a.Type.String(), b.Type.String())
	})
	return out
}

// SortedArrays returns the Array relation ordered by ID.
func (s *Set) SortedArrays() []expr.ExprID {
	return sortedIDs(s.Arrays)
}

// SortedConcats returns the ArrayConcat relation ordered by ID.
func (s *Set) SortedConcats() []expr.ExprID {
	return sortedIDs(s.Concats)
}

// SortedArgs returns the Arg relation ordered by parent, then child.
func (s *Set) SortedArgs() []Arg {
	out := make([]Arg, 0, len(s.Args))
	for a := range s.Args {
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b Arg) int {
		if c := cmp.Compare(a.Parent, b.Parent); c != 0 {
			return c
		}
		return cmp.Compare(a.Child, b.Child)
	})
	return out
}

func sortedIDs(m map[expr.ExprID]struct{}) []expr.ExprID {
	out := make([]expr.ExprID, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
