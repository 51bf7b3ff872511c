// SPDX-License-Identifier: MIT

package sampling

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Source yields independent uniform draws in [0, 1).
type Source interface {
	Float64() float64
}

// DefaultSeed replaces a zero seed. The value is arbitrary but stable.
const DefaultSeed uint64 = 1

// UniformSource is a deterministic Source.
type UniformSource struct {
	u distuv.Uniform
}

// NewUniformSource returns stream 0 for seed; seed 0 means DefaultSeed.
func NewUniformSource(seed uint64) *UniformSource {
	return NewUniformStream(seed, 0)
}

// NewUniformStream returns an independent stream derived from seed and a
// stream identifier, e.g. a worker index. Distinct streams of one seed are
// decorrelated by a SplitMix64 finalizer.
func NewUniformStream(seed, stream uint64) *UniformSource {
	if seed == 0 {
		seed = DefaultSeed
	}

	return &UniformSource{u: distuv.Uniform{
		Min: 0,
		Max: 1,
		Src: rand.NewPCG(seed, mix(seed, stream)),
	}}
}

// Float64 implements Source.
func (s *UniformSource) Float64() float64 { return s.u.Rand() }

// mix is the SplitMix64 finalizer over parent ⊕ stream.
func mix(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return x ^ (x >> 31)
}
