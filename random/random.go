// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package random provides the seeded, reproducible random source used by the generator.
//
// A Source is not safe for concurrent use. Each worker owns its own Source,
// seeded with DeriveSeed so that output does not depend on the number of workers.
package random

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrInvalidRange   = errors.New("random: invalid range")
	ErrInvalidWeights = errors.New("random: invalid weights")
)

const golden = 0x9e3779b97f4a7c15

// DeriveSeed returns the stream seed for a worker of a run.
// The function is part of the output contract: changing it changes every
// generated dataset.
func DeriveSeed(seed int64, worker int) uint64 {
	return splitmix64(uint64(seed) + (uint64(worker)+1)*golden)
}

func splitmix64(x uint64) uint64 {
	x += golden
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// Source is a seeded pseudo-random generator backed by PCG.
type Source struct {
	seed   int64
	worker int
	pcg    *rand.PCG
	r      *rand.Rand
}

// NewSource returns a Source for worker 0 of a run seeded with seed.
func NewSource(seed int64) *Source {
	return NewWorkerSource(seed, 0)
}

// NewWorkerSource returns a Source for the given worker of a run seeded with seed.
// Negative worker indices are treated as 0.
func NewWorkerSource(seed int64, worker int) *Source {
	if worker < 0 {
		worker = 0
	}
	s := &Source{seed: seed, worker: worker}
	s.pcg = rand.NewPCG(0, 0)
	s.r = rand.New(s.pcg)
	s.Reset()
	return s
}

// Seed returns the run seed the source was created with.
func (s *Source) Seed() int64 {
	return s.seed
}

// Worker returns the worker index the source was created for.
func (s *Source) Worker() int {
	return s.worker
}

// Reset rewinds the source to the start of its stream.
func (s *Source) Reset() {
	st := DeriveSeed(s.seed, s.worker)
	s.pcg.Seed(st, splitmix64(st))
}

// NextUniformReal returns a uniformly distributed value in [0, 1).
func (s *Source) NextUniformReal() float64 {
	return s.r.Float64()
}

// NextUniformRange returns a uniformly distributed value in [low, high).
func (s *Source) NextUniformRange(low, high float64) float64 {
	return low + s.NextUniformReal()*(high-low)
}

// NextUniformInt returns a uniformly distributed integer in [low, high).
func (s *Source) NextUniformInt(low, high int64) (int64, error) {
	if low >= high {
		return 0, fmt.Errorf("%w: [%d %d)", ErrInvalidRange, low, high)
	}
	span := uint64(high) - uint64(low)
	return int64(uint64(low) + s.r.Uint64N(span)), nil
}

// NextWeightedChoice returns an index drawn with probability proportional to
// its weight. It consumes exactly one uniform draw.
func (s *Source) NextWeightedChoice(weights []float64) (int, error) {
	wt, err := NewWeightedTable(weights)
	if err != nil {
		return 0, err
	}
	return s.Choose(wt), nil
}

// Choose draws an index from a prebuilt table. It consumes exactly one uniform draw.
func (s *Source) Choose(wt *WeightedTable) int {
	return wt.index(s.NextUniformReal())
}

// WeightedTable is a validated cumulative weight table for inverse-CDF sampling.
// It is immutable and safe for concurrent use.
type WeightedTable struct {
	cdf  []float64
	last int
}

// NewWeightedTable validates weights and builds their cumulative table.
// Weights must be finite and non-negative with at least one positive entry.
func NewWeightedTable(weights []float64) (*WeightedTable, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidWeights)
	}
	last := -1
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, fmt.Errorf("%w: weight %d is %v", ErrInvalidWeights, i, w)
		}
		if w > 0 {
			last = i
		}
	}
	if last < 0 {
		return nil, fmt.Errorf("%w: all %d weights are zero", ErrInvalidWeights, len(weights))
	}

	cdf := make([]float64, len(weights))
	floats.CumSum(cdf, weights)
	if math.IsInf(cdf[len(cdf)-1], 0) {
		return nil, fmt.Errorf("%w: total weight overflows", ErrInvalidWeights)
	}
	return &WeightedTable{cdf: cdf, last: last}, nil
}

// Len returns the number of entries in the table.
func (wt *WeightedTable) Len() int {
	return len(wt.cdf)
}

// Total returns the sum of all weights.
func (wt *WeightedTable) Total() float64 {
	return wt.cdf[len(wt.cdf)-1]
}

// Probability returns the selection probability of entry i.
func (wt *WeightedTable) Probability(i int) float64 {
	prev := 0.0
	if i > 0 {
		prev = wt.cdf[i-1]
	}
	return (wt.cdf[i] - prev) / wt.Total()
}

func (wt *WeightedTable) index(u float64) int {
	target := u * wt.Total()
	i := sort.Search(len(wt.cdf), func(i int) bool { return wt.cdf[i] > target })
	// u*total can round up to total.
	if i > wt.last {
		i = wt.last
	}
	return i
}
