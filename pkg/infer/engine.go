// Package infer derives a type for every node of an expression tree by
// evaluating a small rule program over the tree's facts until no derived
// relation changes.
//
// Derived relations are lattice-valued: when several rule instantiations
// derive a value for the same key, the stored value is the join of all of
// them. All rules are positive, so evaluation order does not change the
// fixpoint and base and push-down rules are evaluated as one program.
package infer

import (
	"context"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"

	"github.com/grafana/arrayinfer/pkg/expr"
	"github.com/grafana/arrayinfer/pkg/facts"
	"github.com/grafana/arrayinfer/pkg/lattice"
)

// Types maps every node of a tree to its inferred type.
type Types map[expr.ExprID]lattice.Type

type Engine struct {
	cfg    Config
	logger log.Logger
}

// New creates an Engine. A nil logger discards all logs.
func New(cfg Config, logger log.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}

	return &Engine{
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Direction is the configured default direction.
func (e *Engine) Direction() Direction {
	return e.cfg.Direction
}

var defaultEngine = &Engine{
	cfg:    defaultConfig(),
	logger: log.NewNopLogger(),
}

// InferTypes infers root with the default configuration.
func InferTypes(d Direction, root expr.Expr) Types {
	return defaultEngine.Infer(d, root)
}

// Infer returns the type of every node of root. The tree must be finite and
// acyclic, and its IDs should be unique; nodes sharing an ID get the join
// of their derivations. Inconsistency is reported as lattice.Inconsistent
// in the result, never as an error.
func (e *Engine) Infer(d Direction, root expr.Expr) Types {
	db := newDatabase(facts.Extract(root), e.logger, e.cfg.TraceDerivations)
	rules := program(d)

	passes := 0
	for {
		sc := e.nextScope(db, passes)
		changed := 0
		for _, r := range rules {
			if r.eval(r, db, sc) {
				changed++
			}
		}
		passes++

		level.Debug(e.logger).Log("msg", "fixpoint pass", "direction", d, "pass", passes, "rules_changed", changed)
		if changed == 0 {
			break
		}
	}

	types := make(Types, len(db.types.values))
	inconsistent := 0
	for id, t := range db.types.values {
		types[id] = t
		if t == lattice.Inconsistent {
			inconsistent++
		}
	}

	metricInferencesTotal.WithLabelValues(d.String()).Inc()
	metricFixpointPasses.Observe(float64(passes))
	metricInconsistentNodesTotal.Add(float64(inconsistent))
	level.Debug(e.logger).Log("msg", "inferred types", "direction", d, "strategy", e.cfg.Strategy, "nodes", len(types), "passes", passes, "inconsistent", inconsistent)

	return types
}

// nextScope picks the keys the next pass evaluates over. Semi-naive passes
// only revisit keys that changed during the previous pass.
func (e *Engine) nextScope(db *database, pass int) scope {
	typesDelta := db.types.takeDelta()
	elemsDelta := db.elems.takeDelta()

	if e.cfg.Strategy == StrategyNaive {
		return scope{
			seed:  true,
			types: db.types.keys(),
			elems: db.elems.keys(),
		}
	}

	return scope{
		seed:  pass == 0,
		types: typesDelta,
		elems: elemsDelta,
	}
}

// InferAll infers every tree of roots in parallel, bounded by
// Config.Concurrency. Results are returned in the order of roots.
func (e *Engine) InferAll(ctx context.Context, d Direction, roots []expr.Expr) ([]Types, error) {
	results := make([]Types, len(roots))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Concurrency)
	for i, root := range roots {
		i, root := i, root
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = e.Infer(d, root)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
