package main

import (
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/grafana/arrayinfer/pkg/lattice"
)

type latticeCmd struct {
	X string `arg:"" help:"first type, e.g. Array(Int64)"`
	Y string `arg:"" help:"second type"`
}

func (cmd *latticeCmd) Run(_ *globalOptions, kctx *kong.Context) error {
	x, err := lattice.ParseType(cmd.X)
	if err != nil {
		return err
	}
	y, err := lattice.ParseType(cmd.Y)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(kctx.Stdout)
	t.AppendHeader(table.Row{"operation", "result"})
	t.AppendRows([]table.Row{
		{"x <= y", strconv.FormatBool(lattice.LessEqual(x, y))},
		{"y <= x", strconv.FormatBool(lattice.LessEqual(y, x))},
		{"join", lattice.LeastUpperBound(x, y).String()},
		{"meet", lattice.GreatestLowerBound(x, y).String()},
	})
	t.Render()
	return nil
}
