package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"
	"github.com/jedib0t/go-pretty/v6/table"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/multierr"

	"github.com/grafana/arrayinfer/pkg/expr"
	"github.com/grafana/arrayinfer/pkg/infer"
	util_log "github.com/grafana/arrayinfer/pkg/util/log"
)

type inferCmd struct {
	File string `arg:"" type:"existingfile" help:"YAML file holding one expression tree per document"`

	Direction         string `help:"Inference direction: up or bidirectional (or bidi). Defaults to the direction of the config file, up otherwise."`
	Format            string `default:"table" enum:"table,json" help:"Output format: table or json."`
	Strict            bool   `help:"Fail if any node is inferred Inconsistent."`
	RejectUnknownRoot bool   `help:"With --strict, also fail trees whose root type is still Unknown."`
}

func (cmd *inferCmd) Run(opts *globalOptions, kctx *kong.Context) error {
	trees, err := loadTrees(cmd.File)
	if err != nil {
		return err
	}

	e, err := opts.engine()
	if err != nil {
		return err
	}

	dir := e.Direction()
	if cmd.Direction != "" {
		if dir, err = infer.ParseDirection(cmd.Direction); err != nil {
			return err
		}
	}

	results, err := e.InferAll(context.Background(), dir, trees)
	if err != nil {
		return err
	}

	switch cmd.Format {
	case "json":
		if err := writeTypesJSON(kctx.Stdout, results); err != nil {
			return err
		}
	default:
		renderTypes(kctx.Stdout, trees, results)
	}

	if !cmd.Strict {
		return nil
	}

	var errs error
	for i, root := range trees {
		if err := infer.Check(root, results[i], infer.CheckOptions{RejectUnknownRoot: cmd.RejectUnknownRoot}); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("tree %d: %w", i, err))
		}
	}
	if errs != nil {
		level.Warn(util_log.Logger).Log("msg", "type check failed", "file", cmd.File, "errors", len(multierr.Errors(errs)))
	}
	return errs
}

func renderTypes(w io.Writer, trees []expr.Expr, results []infer.Types) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"tree", "id", "expr", "type"})

	for i, root := range trees {
		expr.Walk(root, func(n expr.Expr) bool {
			t.AppendRow(table.Row{strconv.Itoa(i), strconv.Itoa(int(n.ID())), n.String(), results[i][n.ID()].String()})
			return true
		})
	}

	t.Render()

	nodes := 0
	for _, types := range results {
		nodes += len(types)
	}
	fmt.Fprintf(w, "inferred %s nodes in %s trees\n", humanize.Comma(int64(nodes)), humanize.Comma(int64(len(trees))))
}

type treeTypes struct {
	Tree  int               `json:"tree"`
	Types map[string]string `json:"types"`
}

func writeTypesJSON(w io.Writer, results []infer.Types) error {
	out := make([]treeTypes, 0, len(results))
	for i, types := range results {
		tt := treeTypes{Tree: i, Types: make(map[string]string, len(types))}
		for id, t := range types {
			tt.Types[strconv.Itoa(int(id))] = t.String()
		}
		out = append(out, tt)
	}

	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	return enc.Encode(out)
}
