package infer

import (
	"errors"
	"flag"
	"fmt"

	"github.com/grafana/arrayinfer/pkg/util"
)

// Strategy is the fixpoint evaluation strategy. Both strategies reach the
// same fixpoint.
type Strategy string

const (
	// StrategyNaive re-applies every rule to every tuple on each pass.
	StrategyNaive Strategy = "naive"
	// StrategySemiNaive only re-applies a rule to the keys whose value
	// changed during the previous pass.
	StrategySemiNaive Strategy = "semi-naive"
)

type Config struct {
	Direction        Direction `yaml:"direction"`
	Strategy         Strategy  `yaml:"strategy"`
	Concurrency      int       `yaml:"concurrency"`
	TraceDerivations bool      `yaml:"trace_derivations"`
}

// RegisterFlagsAndApplyDefaults registers the flags of the engine and sets
// their defaults on cfg.
func (cfg *Config) RegisterFlagsAndApplyDefaults(prefix string, f *flag.FlagSet) {
	cfg.Direction = Up
	f.Var(&cfg.Direction, util.PrefixConfig(prefix, "direction"), "Default inference direction, up or bidirectional.")

	cfg.Strategy = StrategySemiNaive
	f.Func(util.PrefixConfig(prefix, "strategy"), "Fixpoint evaluation strategy, naive or semi-naive. (default semi-naive)", func(s string) error {
		cfg.Strategy = Strategy(s)
		return nil
	})
	f.IntVar(&cfg.Concurrency, util.PrefixConfig(prefix, "concurrency"), 4, "Number of trees inferred in parallel by batch inference.")
	f.BoolVar(&cfg.TraceDerivations, util.PrefixConfig(prefix, "trace-derivations"), false, "Log every value change of a derived relation at debug level.")
}

func (cfg *Config) Validate() error {
	switch cfg.Direction {
	case Up, Bidirectional:
	default:
		return fmt.Errorf("unknown direction %s", cfg.Direction)
	}

	switch cfg.Strategy {
	case StrategyNaive, StrategySemiNaive:
	default:
		return fmt.Errorf("unknown evaluation strategy %q", cfg.Strategy)
	}

	if cfg.Concurrency <= 0 {
		return errors.New("concurrency must be positive")
	}

	return nil
}

func defaultConfig() Config {
	cfg := Config{}
	cfg.RegisterFlagsAndApplyDefaults("", flag.NewFlagSet("", flag.PanicOnError))
	return cfg
}
