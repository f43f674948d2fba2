package expr

import (
	"fmt"

	"go.uber.org/multierr"
)

// Validate reports every ExprID that occurs more than once in the tree.
// Inference never calls it; unique IDs are a precondition callers may choose
// to enforce before inferring.
func Validate(e Expr) error {
	if e == nil {
		return fmt.Errorf("nil expression")
	}

	seen := map[ExprID]int{}
	var err error
	Walk(e, func(n Expr) bool {
		seen[n.ID()]++
		if seen[n.ID()] == 2 {
			err = multierr.Append(err, fmt.Errorf("duplicate expression id %d at %s", n.ID(), n.String()))
		}
		return true
	})
	return err
}
