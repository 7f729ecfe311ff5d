package scenario

import "math/rand"

// Option customizes a generator by mutating a config before the
// transaction log is built, mirroring builder.BuilderOption.
type Option func(*config)

type config struct {
	rng       *rand.Rand
	leaveOpen int // vertex left unclosed; -1 means close everything
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		rng:       rand.New(rand.NewSource(1)),
		leaveOpen: -1,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed seeds the generator's RNG for reproducible random topologies
// (RandomSparse, RandomDAG). Deterministic topologies (Path, Cycle,
// Star, Wheel) ignore it.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLeaveOpen leaves vertex v unclosed at the end of the generated
// log instead of closing every vertex: v stays Open, and the closed
// vertices that reach it become Unknown rather than Dead.
func WithLeaveOpen(v int) Option {
	return func(c *config) {
		c.leaveOpen = v
	}
}
