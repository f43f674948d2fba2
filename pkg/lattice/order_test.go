package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample covers every kind at depth zero plus the interesting array shapes.
var sample = []Type{
	Unknown,
	Null,
	Int64,
	Float64,
	String,
	Inconsistent,
	Array(Unknown),
	Array(Null),
	Array(Int64),
	Array(Float64),
	Array(String),
	Array(Inconsistent),
	Array(Array(Unknown)),
	Array(Array(Int64)),
	Array(Array(Float64)),
	Array(Array(Inconsistent)),
	Array(Array(Array(Unknown))),
	Array(Array(Array(String))),
}

func TestLessEqual(t *testing.T) {
	tests := []struct {
		x, y Type
		want bool
	}{
		{Int64, Float64, true},
		{Float64, Int64, false},
		{Null, Int64, true},
		{Null, Float64, true},
		{Null, String, true},
		{Null, Array(Int64), false},
		{Int64, Null, false},
		{Int64, String, false},
		{String, Float64, false},
		{Unknown, Null, true},
		{Null, Unknown, false},
		{Array(Int64), Array(Float64), false},
		{Array(Float64), Array(Int64), false},
		{Array(Null), Array(Int64), false},
		{Array(Unknown), Array(String), true},
		{Array(Unknown), Array(Array(Int64)), true},
		{Array(String), Array(Inconsistent), true},
		{Array(Array(Int64)), Array(Inconsistent), true},
		{Array(Inconsistent), Array(Unknown), false},
		{Array(Int64), Int64, false},
		{Int64, Array(Int64), false},
		{Array(Array(Unknown)), Array(Array(Int64)), false},
		{Array(Array(Int64)), Array(Array(Unknown)), false},
		{Array(Array(Int64)), Array(Array(Float64)), false},
		{Array(Array(Int64)), Array(Array(Inconsistent)), false},
		{Array(Array(Unknown)), Array(Inconsistent), true},
		{Array(Unknown), Array(Array(Unknown)), true},
		{Array(Array(Int64)), Array(Int64), false},
		{Array(Int64), Inconsistent, true},
		{Unknown, Array(Array(String)), true},
	}

	for _, tt := range tests {
		t.Run(tt.x.String()+"<="+tt.y.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, LessEqual(tt.x, tt.y))
		})
	}
}

func TestLessEqualIsPartialOrder(t *testing.T) {
	for _, x := range sample {
		assert.True(t, LessEqual(x, x), "reflexive %s", x)
		for _, y := range sample {
			if x != y && LessEqual(x, y) {
				assert.False(t, LessEqual(y, x), "antisymmetric %s %s", x, y)
			}
			for _, z := range sample {
				if LessEqual(x, y) && LessEqual(y, z) {
					assert.True(t, LessEqual(x, z), "transitive %s %s %s", x, y, z)
				}
			}
		}
	}
}

func TestBounds(t *testing.T) {
	for _, x := range sample {
		assert.True(t, LessEqual(Unknown, x), x.String())
		assert.True(t, LessEqual(x, Inconsistent), x.String())
	}
}

func TestJoinMeetIdempotent(t *testing.T) {
	for _, x := range sample {
		assert.Equal(t, x, LeastUpperBound(x, x))
		assert.Equal(t, x, GreatestLowerBound(x, x))
	}
}

func TestJoinIsUpperBound(t *testing.T) {
	for _, x := range sample {
		for _, y := range sample {
			j := LeastUpperBound(x, y)
			assert.True(t, LessEqual(x, j), "%s <= %s", x, j)
			assert.True(t, LessEqual(y, j), "%s <= %s", y, j)
			assert.Equal(t, j, LeastUpperBound(y, x), "commutative %s %s", x, y)

			m := GreatestLowerBound(x, y)
			assert.True(t, LessEqual(m, x), "%s <= %s", m, x)
			assert.True(t, LessEqual(m, y), "%s <= %s", m, y)
			assert.Equal(t, m, GreatestLowerBound(y, x), "commutative %s %s", x, y)
		}
	}
}

func TestLeastUpperBound(t *testing.T) {
	tests := []struct {
		x, y, want Type
	}{
		{Int64, Float64, Float64},
		{Null, Int64, Int64},
		{Null, String, String},
		{Int64, String, Inconsistent},
		{Unknown, Null, Null},
		{Null, Array(Int64), Inconsistent},
		{Array(Unknown), Array(Int64), Array(Int64)},
		{Array(Int64), Array(Float64), Inconsistent},
		{Array(Int64), Array(Inconsistent), Array(Inconsistent)},
		{Array(Array(Unknown)), Array(Array(String)), Inconsistent},
		{Array(Array(Int64)), Array(Array(Float64)), Inconsistent},
		{Array(Array(Float64)), Array(Array(Inconsistent)), Inconsistent},
		{Array(Unknown), Array(Array(String)), Array(Array(String))},
	}

	for _, tt := range tests {
		t.Run(tt.x.String()+"+"+tt.y.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, LeastUpperBound(tt.x, tt.y))
		})
	}
}

// Once Array(Inconsistent) is collapsed, the generic join is associative.
func TestJoinAssociativeAfterPropagation(t *testing.T) {
	for _, x := range sample {
		for _, y := range sample {
			for _, z := range sample {
				a, b, c := PropagateInconsistent(x), PropagateInconsistent(y), PropagateInconsistent(z)
				left := LeastUpperBound(LeastUpperBound(a, b), c)
				right := LeastUpperBound(a, LeastUpperBound(b, c))
				assert.Equal(t, left, right, "(%s + %s) + %s", a, b, c)
			}
		}
	}

	// nested arrays with different element types have no upper bound but
	// Inconsistent, whichever way they are grouped
	x, y, z := Array(Array(Int64)), Array(Array(Float64)), Array(Array(Inconsistent))
	assert.Equal(t, Inconsistent, LeastUpperBound(LeastUpperBound(x, y), z))
	assert.Equal(t, Inconsistent, LeastUpperBound(x, LeastUpperBound(y, z)))
}

func TestGreatestLowerBound(t *testing.T) {
	assert.Equal(t, Int64, GreatestLowerBound(Int64, Float64))
	assert.Equal(t, Null, GreatestLowerBound(Null, String))
	assert.Equal(t, Unknown, GreatestLowerBound(Int64, String))
	assert.Equal(t, Array(Unknown), GreatestLowerBound(Array(Unknown), Array(String)))
	assert.Equal(t, Unknown, GreatestLowerBound(Array(Int64), Array(Float64)))
	assert.Equal(t, Unknown, GreatestLowerBound(Array(Array(Unknown)), Array(Array(Int64))))
}

func TestPropagateInconsistent(t *testing.T) {
	assert.Equal(t, Inconsistent, PropagateInconsistent(Array(Inconsistent)))
	for _, x := range sample {
		if x == Array(Inconsistent) {
			continue
		}
		assert.Equal(t, x, PropagateInconsistent(x))
	}

	// monotone over the sample
	for _, x := range sample {
		for _, y := range sample {
			if LessEqual(x, y) {
				assert.True(t, LessEqual(PropagateInconsistent(x), PropagateInconsistent(y)), "%s %s", x, y)
			}
		}
	}
}

func TestParseType(t *testing.T) {
	for _, x := range sample {
		got, err := ParseType(x.String())
		require.NoError(t, err)
		assert.Equal(t, x, got)
	}

	got, err := ParseType(" Array( Float64 ) ")
	require.NoError(t, err)
	assert.Equal(t, Array(Float64), got)

	for _, bad := range []string{"", "Bool", "Array(Int64", "Array()", "array(Int64)"} {
		_, err := ParseType(bad)
		assert.Error(t, err, bad)
	}
}

func TestElem(t *testing.T) {
	e, ok := Array(Array(String)).Elem()
	require.True(t, ok)
	assert.Equal(t, Array(String), e)

	_, ok = String.Elem()
	assert.False(t, ok)
}
