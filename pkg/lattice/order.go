package lattice

// LessEqual is the partial order of the lattice. Unknown is the bottom and
// Inconsistent the top. Int64 widens to Float64 and Null fits any scalar.
// Arrays are not covariant in their element: two array types are only
// related through Array(Unknown) below and Array(Inconsistent) above, so
// Array(Int64) and Array(Float64) are incomparable, and so are
// Array(Array(Unknown)) and Array(Array(Int64)).
func LessEqual(x, y Type) bool {
	if x == y {
		return true
	}

	if x == Unknown || y == Inconsistent {
		return true
	}

	if x == Int64 && y == Float64 {
		return true
	}

	if x == Null {
		return y.isScalar()
	}

	if x.IsArray() && y.IsArray() {
		xe, _ := x.Elem()
		ye, _ := y.Elem()
		return ye == Inconsistent || xe == Unknown
	}

	return false
}

// LeastUpperBound returns the join of x and y. Incomparable types join to
// Inconsistent.
func LeastUpperBound(x, y Type) Type {
	if LessEqual(x, y) {
		return y
	}
	if LessEqual(y, x) {
		return x
	}
	return Inconsistent
}

// GreatestLowerBound returns the meet of x and y. Incomparable types meet at
// Unknown.
func GreatestLowerBound(x, y Type) Type {
	if LessEqual(x, y) {
		return x
	}
	if LessEqual(y, x) {
		return y
	}
	return Unknown
}

// PropagateInconsistent collapses Array(Inconsistent) to Inconsistent so an
// inconsistent element type poisons the enclosing array.
func PropagateInconsistent(t Type) Type {
	if t == Array(Inconsistent) {
		return Inconsistent
	}
	return t
}

func (t Type) isScalar() bool {
	if t.IsArray() {
		return false
	}
	return t.Kind == KindInt64 || t.Kind == KindFloat64 || t.Kind == KindString
}
