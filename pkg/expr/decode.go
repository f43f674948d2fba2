package expr

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// yamlNode is the on-disk shape of a tree. Exactly one field is set:
//
//	array:
//	  id: 1
//	  args:
//	    - lit: {id: 2, int64: 42}
//	    - lit: {id: 3}            # null
//	    - concat: {id: 4, args: []}
type yamlNode struct {
	Lit    *yamlLit  `yaml:"lit"`
	Array  *yamlCall `yaml:"array"`
	Concat *yamlCall `yaml:"concat"`
}

type yamlLit struct {
	ID      *ExprID  `yaml:"id"`
	Int64   *int64   `yaml:"int64"`
	Float64 *float64 `yaml:"float64"`
	String  *string  `yaml:"string"`
}

type yamlCall struct {
	ID   *ExprID    `yaml:"id"`
	Args []yamlNode `yaml:"args"`
}

// Unmarshal decodes a single YAML document into an expression tree.
func Unmarshal(b []byte) (Expr, error) {
	exprs, err := DecodeAll(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	if len(exprs) != 1 {
		return nil, errors.Errorf("expected exactly one expression, found %d", len(exprs))
	}
	return exprs[0], nil
}

// DecodeAll decodes every YAML document in r as an expression tree.
func DecodeAll(r io.Reader) ([]Expr, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var exprs []Expr
	for i := 0; ; i++ {
		var n yamlNode
		err := dec.Decode(&n)
		if err == io.EOF {
			return exprs, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "document %d", i)
		}

		e, err := n.build()
		if err != nil {
			return nil, errors.Wrapf(err, "document %d", i)
		}
		exprs = append(exprs, e)
	}
}

func (n yamlNode) build() (Expr, error) {
	set := 0
	for _, ok := range []bool{n.Lit != nil, n.Array != nil, n.Concat != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return nil, errors.Errorf("node must have exactly one of lit, array or concat, found %d", set)
	}

	switch {
	case n.Lit != nil:
		l, err := n.Lit.build()
		return l, errors.Wrap(err, "lit")
	case n.Array != nil:
		id, args, err := n.Array.build()
		if err != nil {
			return nil, errors.Wrap(err, "array")
		}
		return NewArray(id, args...), nil
	default:
		id, args, err := n.Concat.build()
		if err != nil {
			return nil, errors.Wrap(err, "concat")
		}
		return NewArrayConcat(id, args...), nil
	}
}

func (l *yamlLit) build() (Expr, error) {
	if l.ID == nil {
		return nil, errors.New("missing id")
	}

	values := 0
	v := NewNullLiteral()
	if l.Int64 != nil {
		values++
		v = NewInt64Literal(*l.Int64)
	}
	if l.Float64 != nil {
		values++
		v = NewFloat64Literal(*l.Float64)
	}
	if l.String != nil {
		values++
		v = NewStringLiteral(*l.String)
	}
	if values > 1 {
		return nil, errors.Errorf("literal %d has %d values", *l.ID, values)
	}

	return NewLit(*l.ID, v), nil
}

func (c *yamlCall) build() (ExprID, []Expr, error) {
	if c.ID == nil {
		return 0, nil, errors.New("missing id")
	}

	args := make([]Expr, 0, len(c.Args))
	for i, a := range c.Args {
		e, err := a.build()
		if err != nil {
			return 0, nil, errors.Wrapf(err, "args[%d]", i)
		}
		args = append(args, e)
	}
	return *c.ID, args, nil
}
