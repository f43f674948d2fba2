package infer

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/grafana/arrayinfer/pkg/expr"
	"github.com/grafana/arrayinfer/pkg/facts"
	"github.com/grafana/arrayinfer/pkg/lattice"
)

// database is the fact store of a single inference: the base relations,
// indexes over Arg, and the two derived lattice-valued relations
// Type(id; t) and ArrayElemType(array_id; t).
type database struct {
	facts     *facts.Set
	argsOf    map[expr.ExprID][]expr.ExprID
	parentsOf map[expr.ExprID][]expr.ExprID

	types *relation
	elems *relation

	logger log.Logger
	trace  bool
}

func newDatabase(fs *facts.Set, logger log.Logger, trace bool) *database {
	db := &database{
		facts:     fs,
		argsOf:    map[expr.ExprID][]expr.ExprID{},
		parentsOf: map[expr.ExprID][]expr.ExprID{},
		types:     newRelation("Type"),
		elems:     newRelation("ArrayElemType"),
		logger:    logger,
		trace:     trace,
	}

	for _, a := range fs.SortedArgs() {
		db.argsOf[a.Parent] = append(db.argsOf[a.Parent], a.Child)
		db.parentsOf[a.Child] = append(db.parentsOf[a.Child], a.Parent)
	}
	return db
}

func (db *database) isArray(id expr.ExprID) bool {
	_, ok := db.facts.Arrays[id]
	return ok
}

func (db *database) isConcat(id expr.ExprID) bool {
	_, ok := db.facts.Concats[id]
	return ok
}

// derive merges t into rel[id] and reports whether anything changed.
func (db *database) derive(r *rule, rel *relation, id expr.ExprID, t lattice.Type) bool {
	stored, changed := rel.merge(id, t)
	if changed && db.trace {
		level.Debug(db.logger).Log("msg", "derived", "rule", r.name, "relation", rel.name, "id", id, "derived", t, "stored", stored)
	}
	return changed
}

// scope holds the keys a pass evaluates lattice-valued body atoms over.
// Seed rules have no such atom and only fire when seed is set.
type scope struct {
	seed  bool
	types []expr.ExprID
	elems []expr.ExprID
}

type rule struct {
	name string
	eval func(r *rule, db *database, sc scope) bool
}

// Type(lit_id; t) :- Lit(lit_id, t).
var litSeed = rule{
	name: "lit-seed",
	eval: func(r *rule, db *database, sc scope) bool {
		if !sc.seed {
			return false
		}
		changed := false
		for _, l := range db.facts.SortedLits() {
			changed = db.derive(r, db.types, l.ID, l.Type) || changed
		}
		return changed
	},
}

// Type(array_id; Array(Unknown)) :- Array(array_id).
var arraySeed = rule{
	name: "array-seed",
	eval: func(r *rule, db *database, sc scope) bool {
		if !sc.seed {
			return false
		}
		changed := false
		for _, id := range db.facts.SortedArrays() {
			changed = db.derive(r, db.types, id, lattice.Array(lattice.Unknown)) || changed
		}
		return changed
	},
}

// Type(array_id; Array(t)) :- ArrayElemType(array_id; t).
var arrayFromElems = rule{
	name: "array-from-elems",
	eval: func(r *rule, db *database, sc scope) bool {
		changed := false
		for _, id := range sc.elems {
			t, _ := db.elems.get(id)
			changed = db.derive(r, db.types, id, lattice.Array(t)) || changed
		}
		return changed
	},
}

// ArrayElemType(array_id; t) :- Array(array_id), Arg(array_id, elem_id), Type(elem_id; t).
var elemsFromArgs = rule{
	name: "elems-from-args",
	eval: func(r *rule, db *database, sc scope) bool {
		changed := false
		for _, elem := range sc.types {
			t, _ := db.types.get(elem)
			for _, id := range db.parentsOf[elem] {
				if db.isArray(id) {
					changed = db.derive(r, db.elems, id, t) || changed
				}
			}
		}
		return changed
	},
}

// Type(concat_id; Array(Unknown)) :- ArrayConcat(concat_id).
var concatSeed = rule{
	name: "concat-seed",
	eval: func(r *rule, db *database, sc scope) bool {
		if !sc.seed {
			return false
		}
		changed := false
		for _, id := range db.facts.SortedConcats() {
			changed = db.derive(r, db.types, id, lattice.Array(lattice.Unknown)) || changed
		}
		return changed
	},
}

// Type(concat_id; t) :- ArrayConcat(concat_id), Arg(concat_id, arg_id), Type(arg_id; t).
var concatFromArgs = rule{
	name: "concat-from-args",
	eval: func(r *rule, db *database, sc scope) bool {
		changed := false
		for _, arg := range sc.types {
			t, _ := db.types.get(arg)
			for _, id := range db.parentsOf[arg] {
				if db.isConcat(id) {
					changed = db.derive(r, db.types, id, t) || changed
				}
			}
		}
		return changed
	},
}

// Type(id; propagateInconsistent(t)) :- Type(id; t).
var closeInconsistent = rule{
	name: "close-inconsistent",
	eval: func(r *rule, db *database, sc scope) bool {
		changed := false
		for _, id := range sc.types {
			t, _ := db.types.get(id)
			changed = db.derive(r, db.types, id, lattice.PropagateInconsistent(t)) || changed
		}
		return changed
	},
}

// Type(arg_id; t) :- ArrayElemType(array_id; t), Arg(array_id, arg_id).
var pushElems = rule{
	name: "push-elems",
	eval: func(r *rule, db *database, sc scope) bool {
		changed := false
		for _, id := range sc.elems {
			t, _ := db.elems.get(id)
			for _, arg := range db.argsOf[id] {
				changed = db.derive(r, db.types, arg, t) || changed
			}
		}
		return changed
	},
}

// Type(arg_id; t) :- ArrayConcat(concat_id), Arg(concat_id, arg_id), Type(concat_id; t).
var pushConcat = rule{
	name: "push-concat",
	eval: func(r *rule, db *database, sc scope) bool {
		changed := false
		for _, id := range sc.types {
			if !db.isConcat(id) {
				continue
			}
			t, _ := db.types.get(id)
			for _, arg := range db.argsOf[id] {
				changed = db.derive(r, db.types, arg, t) || changed
			}
		}
		return changed
	},
}

var (
	baseRules     = []*rule{&litSeed, &arraySeed, &arrayFromElems, &elemsFromArgs, &concatSeed, &concatFromArgs, &closeInconsistent}
	pushDownRules = []*rule{&pushElems, &pushConcat}
)

// program returns the rules evaluated together for the given direction.
func program(d Direction) []*rule {
	rules := append([]*rule{}, baseRules...)
	if d == Bidirectional {
		rules = append(rules, pushDownRules...)
	}
	return rules
}
