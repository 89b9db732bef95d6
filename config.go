package powmem

import "runtime"

// Config holds the search parameters for Roll and Miner.
type Config struct {
	Geobits   int    // location precision in bits (default 15)
	MaxTries  int    // tries per Roll call (default 500000)
	Workers   int    // Miner goroutines (default runtime.NumCPU())
	BatchSize int    // tries per Miner batch between progress reports (default 1000)
	Budget    uint64 // total Miner tries, 0 for no limit

	// Progress is called by Miner workers after every batch with the total
	// number of tries so far. It must be safe for concurrent use.
	Progress func(tries uint64)
}

// Option is a functional option for configuring a search.
type Option func(*Config)

// WithGeobits sets the location precision in bits.
func WithGeobits(n int) Option {
	return func(c *Config) {
		c.Geobits = n
	}
}

// WithMaxTries sets the number of keys Roll tests before giving up.
func WithMaxTries(n int) Option {
	return func(c *Config) {
		c.MaxTries = n
	}
}

// WithWorkers sets the number of Miner goroutines.
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}

// WithBatchSize sets the number of tries a Miner worker makes between
// cancellation checks and progress reports.
func WithBatchSize(n int) Option {
	return func(c *Config) {
		c.BatchSize = n
	}
}

// WithBudget caps the total number of Miner tries.
func WithBudget(n uint64) Option {
	return func(c *Config) {
		c.Budget = n
	}
}

// WithProgress registers a progress callback.
func WithProgress(fn func(tries uint64)) Option {
	return func(c *Config) {
		c.Progress = fn
	}
}

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	return &Config{
		Geobits:   DefaultGeobits,
		MaxTries:  500000,
		Workers:   runtime.NumCPU(),
		BatchSize: 1000,
	}
}

func newConfig(opts []Option) *Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 1
	}
	return cfg
}
