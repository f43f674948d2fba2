package expr

import (
	"strconv"
	"strings"
)

func (l Literal) String() string {
	switch l.Kind {
	case LiteralInt64:
		return strconv.FormatInt(l.Int, 10)
	case LiteralFloat64:
		return strconv.FormatFloat(l.Float, 'g', -1, 64)
	case LiteralString:
		return strconv.Quote(l.Str)
	}
	return "null"
}

func (l *Lit) String() string {
	return l.Value.String()
}

func (a *Array) String() string {
	return "[" + joinArgs(a.Args) + "]"
}

func (c *ArrayConcat) String() string {
	return "array_concat(" + joinArgs(c.Args) + ")"
}

func joinArgs(args []Expr) string {
	s := make([]string, 0, len(args))
	for _, a := range args {
		s = append(s, a.String())
	}
	return strings.Join(s, ", ")
}
