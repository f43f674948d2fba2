package infer

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/grafana/arrayinfer/pkg/expr"
	"github.com/grafana/arrayinfer/pkg/lattice"
)

// TypeError is the error type returned from Check for an ill-typed node.
type TypeError struct {
	At   expr.Expr
	Type lattice.Type
	Msg  string
}

func (t *TypeError) Error() string {
	return fmt.Sprintf("expression %d %q is ill-typed: %s", t.At.ID(), t.At.String(), t.Msg)
}

type CheckOptions struct {
	// RejectUnknownRoot fails a root whose type still contains Unknown,
	// e.g. an empty array whose element type was never determined.
	RejectUnknownRoot bool
}

// Check turns the result of an inference into a strict verdict. Every node
// inferred Inconsistent is reported; the returned error combines all of
// them and each can be retrieved with multierr.Errors.
func Check(root expr.Expr, types Types, opts CheckOptions) error {
	if root == nil {
		return fmt.Errorf("nil expression")
	}

	var err error
	seen := map[expr.ExprID]struct{}{}
	expr.Walk(root, func(n expr.Expr) bool {
		if _, ok := seen[n.ID()]; ok {
			return true
		}
		seen[n.ID()] = struct{}{}

		if t := types[n.ID()]; t == lattice.Inconsistent {
			err = multierr.Append(err, &TypeError{At: n, Type: t, Msg: "arguments have incompatible types"})
		}
		return true
	})

	if opts.RejectUnknownRoot {
		if t := types[root.ID()]; t.Kind == lattice.KindUnknown {
			err = multierr.Append(err, &TypeError{At: root, Type: t, Msg: fmt.Sprintf("type %s cannot be determined", t)})
		}
	}

	return err
}
