package infer

import (
	"slices"

	"github.com/grafana/arrayinfer/pkg/expr"
	"github.com/grafana/arrayinfer/pkg/lattice"
)

// relation is a lattice-valued relation holding one value per key. Deriving
// a value for a key that is already present stores the join of both, so
// every key converges to the join of all its derivations.
type relation struct {
	name   string
	values map[expr.ExprID]lattice.Type

	// keys changed since the last call to takeDelta
	delta map[expr.ExprID]struct{}
}

func newRelation(name string) *relation {
	return &relation{
		name:   name,
		values: map[expr.ExprID]lattice.Type{},
		delta:  map[expr.ExprID]struct{}{},
	}
}

func (r *relation) get(id expr.ExprID) (lattice.Type, bool) {
	t, ok := r.values[id]
	return t, ok
}

// merge joins t into the value stored for id and reports whether the stored
// value changed.
func (r *relation) merge(id expr.ExprID, t lattice.Type) (lattice.Type, bool) {
	old, ok := r.values[id]
	if ok {
		t = lattice.LeastUpperBound(old, t)
		if t == old {
			return old, false
		}
	}

	r.values[id] = t
	r.delta[id] = struct{}{}
	return t, true
}

// takeDelta returns the keys changed since the previous call, in order, and
// starts a new delta.
func (r *relation) takeDelta() []expr.ExprID {
	keys := make([]expr.ExprID, 0, len(r.delta))
	for id := range r.delta {
		keys = append(keys, id)
	}
	slices.Sort(keys)
	r.delta = map[expr.ExprID]struct{}{}
	return keys
}

func (r *relation) keys() []expr.ExprID {
	keys := make([]expr.ExprID, 0, len(r.values))
	for id := range r.values {
		keys = append(keys, id)
	}
	slices.Sort(keys)
	return keys
}
