// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package geogen generates reproducible synthetic geographic points and boxes
// distributed like real-world landmass occupancy and valid across the antimeridian.
package geogen

import (
	"errors"
	"fmt"

	"github.com/2dChan/geogen/continent"
	"github.com/2dChan/geogen/geom"
	"github.com/2dChan/geogen/random"
)

var ErrInvalidWorker = errors.New("geogen: invalid worker index")

type GeneratorOptions struct {
	Worker  int
	Regions []continent.Region
	Sampler *continent.Sampler
}

type GeneratorOption func(*GeneratorOptions) error

// WithWorker sets the worker (shard) index used to derive the random stream.
func WithWorker(worker int) GeneratorOption {
	return func(o *GeneratorOptions) error {
		if worker < 0 {
			return fmt.Errorf("WithWorker: %w: %d", ErrInvalidWorker, worker)
		}
		o.Worker = worker
		return nil
	}
}

// WithRegions replaces the built-in region table.
func WithRegions(regions []continent.Region) GeneratorOption {
	return func(o *GeneratorOptions) error {
		if len(regions) == 0 {
			return fmt.Errorf("WithRegions: %w", continent.ErrEmptyRegionTable)
		}
		o.Regions = regions
		return nil
	}
}

// WithSampler shares an already built sampler, so that many workers read one
// region table.
func WithSampler(s *continent.Sampler) GeneratorOption {
	return func(o *GeneratorOptions) error {
		if s == nil {
			return errors.New("WithSampler: nil sampler")
		}
		o.Sampler = s
		return nil
	}
}

// Generator bundles a worker's random source with a continent sampler.
// It is not safe for concurrent use; create one per worker.
type Generator struct {
	src     *random.Source
	sampler *continent.Sampler
}

// NewGenerator returns a Generator for the run seeded with seed.
func NewGenerator(seed int64, setters ...GeneratorOption) (*Generator, error) {
	opts := GeneratorOptions{}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	sampler := opts.Sampler
	if sampler == nil {
		regions := opts.Regions
		if regions == nil {
			regions = continent.DefaultRegions()
		}
		var err error
		sampler, err = continent.NewSampler(regions)
		if err != nil {
			return nil, err
		}
	}

	return &Generator{
		src:     random.NewWorkerSource(seed, opts.Worker),
		sampler: sampler,
	}, nil
}

// Seed returns the run seed.
func (g *Generator) Seed() int64 {
	return g.src.Seed()
}

// Worker returns the worker index.
func (g *Generator) Worker() int {
	return g.src.Worker()
}

// Source returns the generator's random source for callers that draw
// additional attributes from the same stream.
func (g *Generator) Source() *random.Source {
	return g.src
}

// Sampler returns the generator's region sampler.
func (g *Generator) Sampler() *continent.Sampler {
	return g.sampler
}

// Reset rewinds the generator to the start of its stream.
func (g *Generator) Reset() {
	g.src.Reset()
}

// SamplePoint returns a canonical coordinate biased toward landmasses.
func (g *Generator) SamplePoint() geom.Coordinate {
	return g.sampler.SamplePoint(g.src)
}

// SampleBox returns a canonical box centered on a sampled point, with width
// and height drawn from [minSize, maxSize] degrees.
func (g *Generator) SampleBox(minSize, maxSize float64) (geom.BoundingBox, error) {
	return g.sampler.SampleBox(g.src, minSize, maxSize)
}

// Regions returns the region table with canonical boxes.
func (g *Generator) Regions() []continent.Region {
	return g.sampler.Regions()
}
