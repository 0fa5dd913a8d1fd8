package validation

import "time"

// Config is the env-driven manager configuration. Load it with config.Load.
type Config struct {
	// BreakOn lists the result kinds that stop the sync phase and skip the async phase.
	BreakOn []ResultType `env:"VALIDATION_BREAK_ON" envSeparator:"," envDefault:"error"`
	// ExhaustiveSync runs every sync rule even after a break kind was produced;
	// the break set then only gates the async phase.
	ExhaustiveSync bool `env:"VALIDATION_EXHAUSTIVE_SYNC" envDefault:"false"`
	// AsyncTimeout bounds each async rule. Zero means no bound.
	AsyncTimeout time.Duration `env:"VALIDATION_ASYNC_TIMEOUT" envDefault:"0s"`
}

// DefaultConfig mirrors the manager defaults.
func DefaultConfig() Config {
	return Config{BreakOn: []ResultType{ResultError}}
}
