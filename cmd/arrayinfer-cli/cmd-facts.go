package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/kong"

	"github.com/grafana/arrayinfer/pkg/facts"
)

type factsCmd struct {
	File string `arg:"" type:"existingfile" help:"YAML file holding one expression tree per document"`
}

func (cmd *factsCmd) Run(_ *globalOptions, kctx *kong.Context) error {
	trees, err := loadTrees(cmd.File)
	if err != nil {
		return err
	}

	for i, root := range trees {
		fmt.Fprintf(kctx.Stdout, "# tree %d\n", i)
		printFacts(kctx.Stdout, facts.Extract(root))
	}
	return nil
}

func printFacts(w io.Writer, s *facts.Set) {
	for _, l := range s.SortedLits() {
		fmt.Fprintf(w, "Lit(%d, %s)\n", l.ID, l.Type)
	}
	for _, id := range s.SortedArrays() {
		fmt.Fprintf(w, "Array(%d)\n", id)
	}
	for _, id := range s.SortedConcats() {
		fmt.Fprintf(w, "ArrayConcat(%d)\n", id)
	}
	for _, a := range s.SortedArgs() {
		fmt.Fprintf(w, "Arg(%d, %d)\n", a.Parent, a.Child)
	}
}
