package main

import (
	"bytes"
	"flag"
	"os"

	"github.com/go-kit/log"
	dslog "github.com/grafana/dskit/log"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/grafana/arrayinfer/pkg/expr"
	"github.com/grafana/arrayinfer/pkg/infer"
	util_log "github.com/grafana/arrayinfer/pkg/util/log"
)

func (g *globalOptions) logger() (log.Logger, error) {
	var lvl dslog.Level
	if err := lvl.Set(g.LogLevel); err != nil {
		return nil, err
	}
	return util_log.InitLogger(os.Stderr, g.LogFormat, lvl), nil
}

// engineConfig returns the flag defaults overridden by the config file, if
// one was given.
func (g *globalOptions) engineConfig() (infer.Config, error) {
	cfg := infer.Config{}
	cfg.RegisterFlagsAndApplyDefaults("", flag.NewFlagSet("", flag.PanicOnError))

	if g.ConfigFile == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(g.ConfigFile)
	if err != nil {
		return cfg, errors.Wrap(err, "failed to read config file")
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed to parse config file %s", g.ConfigFile)
	}
	return cfg, cfg.Validate()
}

func (g *globalOptions) engine() (*infer.Engine, error) {
	cfg, err := g.engineConfig()
	if err != nil {
		return nil, err
	}

	logger, err := g.logger()
	if err != nil {
		return nil, err
	}
	return infer.New(cfg, logger)
}

func loadTrees(path string) ([]expr.Expr, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	trees, err := expr.DecodeAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}
	if len(trees) == 0 {
		return nil, errors.Errorf("no expression trees in %s", path)
	}
	return trees, nil
}
