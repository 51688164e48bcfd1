// SPDX-License-Identifier: MIT
// Package builder: functional options resolving into an immutable config.

package builder

// DefaultSeed freezes stochastic generators when no seed is supplied, so a
// test that forgets WithSeed is still reproducible.
const DefaultSeed int64 = 42

// Option configures a stochastic generator.
type Option func(*config)

type config struct {
	seed int64
}

// WithSeed fixes the random source for RandomSparse.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// resolveOptions folds defaults with the supplied options.
func resolveOptions(opts []Option) config {
	cfg := config{seed: DefaultSeed}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
