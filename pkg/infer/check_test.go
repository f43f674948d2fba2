package infer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/grafana/arrayinfer/pkg/expr"
	"github.com/grafana/arrayinfer/pkg/lattice"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name   string
		root   expr.Expr
		dir    Direction
		opts   CheckOptions
		errIDs []expr.ExprID
	}{
		{
			name: "well typed",
			root: array(1, lit(2, i64(42)), lit(3, null())),
		},
		{
			name:   "heterogeneous up",
			root:   array(1, lit(2, i64(42)), lit(3, str("foo"))),
			errIDs: []expr.ExprID{1},
		},
		{
			name:   "heterogeneous bidirectional",
			root:   array(1, lit(2, i64(42)), lit(3, str("foo"))),
			dir:    Bidirectional,
			errIDs: []expr.ExprID{1, 2, 3},
		},
		{
			name: "empty array allowed",
			root: array(1),
		},
		{
			name:   "empty array rejected",
			root:   array(1),
			opts:   CheckOptions{RejectUnknownRoot: true},
			errIDs: []expr.ExprID{1},
		},
		{
			name: "refined empty array accepted",
			root: concat(1, array(2), array(3, lit(4, str("a")))),
			dir:  Bidirectional,
			opts: CheckOptions{RejectUnknownRoot: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.root, InferTypes(tt.dir, tt.root), tt.opts)
			if len(tt.errIDs) == 0 {
				require.NoError(t, err)
				return
			}

			errs := multierr.Errors(err)
			require.Len(t, errs, len(tt.errIDs))
			for i, e := range errs {
				var typeErr *TypeError
				require.True(t, errors.As(e, &typeErr))
				assert.Equal(t, tt.errIDs[i], typeErr.At.ID())
			}
		})
	}
}

func TestTypeErrorMessage(t *testing.T) {
	root := array(7, lit(8, i64(1)), lit(9, str("x")))
	err := Check(root, InferTypes(Up, root), CheckOptions{})
	require.Error(t, err)
	assert.Equal(t, `expression 7 "[1, \"x\"]" is ill-typed: arguments have incompatible types`, err.Error())

	err = Check(array(1), Types{1: lattice.Array(lattice.Unknown)}, CheckOptions{RejectUnknownRoot: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type Array(Unknown) cannot be determined")
}

func TestCheckNilRoot(t *testing.T) {
	for _, opts := range []CheckOptions{{}, {RejectUnknownRoot: true}} {
		assert.EqualError(t, Check(nil, Types{}, opts), "nil expression")
	}
}
