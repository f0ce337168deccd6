// SPDX-License-Identifier: MIT
// Package: montecarlo
//
// options.go — functional options for NewMetropolis.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs (nil source,
//     nil configuration). Run itself never panics.
//   • Later options override earlier ones.

package montecarlo

import "github.com/katalvlaran/isingraph/spin"

// Option customizes a Metropolis sampler.
type Option func(*samplerConfig)

type samplerConfig struct {
	src     Source
	initial *spin.Config
}

// WithSource injects the uniform random source. Panics on nil.
func WithSource(src Source) Option {
	if src == nil {
		panic("montecarlo: WithSource(nil)")
	}
	return func(c *samplerConfig) {
		c.src = src
	}
}

// WithSeed uses a math/rand stream seeded with seed (0 ⇒ default seed).
func WithSeed(seed int64) Option {
	return func(c *samplerConfig) {
		c.src = sourceFromSeed(seed)
	}
}

// WithInitial starts every run from a copy of conf instead of all zeros.
// Panics on nil; the length is checked by NewMetropolis.
func WithInitial(conf *spin.Config) Option {
	if conf == nil {
		panic("montecarlo: WithInitial(nil)")
	}
	snapshot := conf.Clone()
	return func(c *samplerConfig) {
		c.initial = snapshot
	}
}
