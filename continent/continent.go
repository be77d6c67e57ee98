// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package continent biases point and box placement toward continental landmasses.
//
// A Sampler holds a weighted table of regions. Each draw picks a region by
// weight, maps a unit-square sample onto the region's box and normalizes the
// result around the antimeridian.
package continent

import (
	"errors"
	"fmt"
	"math"

	"github.com/2dChan/geogen/affine"
	"github.com/2dChan/geogen/antimeridian"
	"github.com/2dChan/geogen/geom"
	"github.com/2dChan/geogen/random"
)

var (
	ErrEmptyRegionTable = errors.New("continent: empty region table")
	ErrInvalidWeight    = errors.New("continent: invalid region weight")
	ErrInvalidSizeRange = errors.New("continent: invalid size range")
)

// Region is a named sampling region with a relative occupancy weight.
type Region struct {
	Name   string
	Box    geom.BoundingBox
	Weight float64
}

// Sampler draws coordinates from a fixed region table.
// It is immutable after construction and safe for concurrent use; the
// random.Source passed to each call is not.
type Sampler struct {
	regions    []Region
	transforms []affine.Transform
	table      *random.WeightedTable
}

// NewSampler validates regions and builds a Sampler over them.
//
// Region boxes are stored in canonical form. Regions with zero weight are kept
// but never drawn.
func NewSampler(regions []Region) (*Sampler, error) {
	if len(regions) == 0 {
		return nil, fmt.Errorf("%w: no regions", ErrEmptyRegionTable)
	}

	s := &Sampler{
		regions:    make([]Region, len(regions)),
		transforms: make([]affine.Transform, len(regions)),
	}
	weights := make([]float64, len(regions))
	positive := false
	for i, r := range regions {
		if math.IsNaN(r.Weight) || math.IsInf(r.Weight, 0) || r.Weight < 0 {
			return nil, fmt.Errorf("%w: region %q has weight %v", ErrInvalidWeight, r.Name, r.Weight)
		}
		positive = positive || r.Weight > 0

		box, err := antimeridian.NormalizeBox(r.Box)
		if err != nil {
			return nil, fmt.Errorf("continent: region %q: %w", r.Name, err)
		}
		t, err := affine.FromBoundingBox(affine.UnitSquare, box)
		if err != nil {
			return nil, fmt.Errorf("continent: region %q: %w", r.Name, err)
		}

		s.regions[i] = Region{Name: r.Name, Box: box, Weight: r.Weight}
		s.transforms[i] = t
		weights[i] = r.Weight
	}
	if !positive {
		return nil, fmt.Errorf("%w: all %d weights are zero", ErrEmptyRegionTable, len(regions))
	}

	table, err := random.NewWeightedTable(weights)
	if err != nil {
		return nil, fmt.Errorf("continent: %w", err)
	}
	s.table = table
	return s, nil
}

// Len returns the number of regions.
func (s *Sampler) Len() int {
	return len(s.regions)
}

// Region returns the i-th region with its canonical box.
func (s *Sampler) Region(i int) (Region, error) {
	if i < 0 || i >= len(s.regions) {
		return Region{}, fmt.Errorf("Region: index %d out of range [0 %d)", i, len(s.regions))
	}
	return s.regions[i], nil
}

// Regions returns a copy of the region table with canonical boxes.
func (s *Sampler) Regions() []Region {
	out := make([]Region, len(s.regions))
	copy(out, s.regions)
	return out
}

// SamplePoint draws a region by weight and a point inside its box.
// It consumes three uniform draws from src.
func (s *Sampler) SamplePoint(src *random.Source) geom.Coordinate {
	_, c := s.samplePoint(src)
	return c
}

// SampleRegionPoint is SamplePoint that also reports the drawn region index.
func (s *Sampler) SampleRegionPoint(src *random.Source) (int, geom.Coordinate) {
	return s.samplePoint(src)
}

func (s *Sampler) samplePoint(src *random.Source) (int, geom.Coordinate) {
	i := src.Choose(s.table)
	u := src.NextUniformReal()
	v := src.NextUniformReal()
	lon, lat := s.transforms[i].Apply(u, v)
	return i, antimeridian.NormalizePoint(lon, lat)
}

// SampleBox draws a box centered on a SamplePoint with width and height drawn
// independently from [minSize, maxSize] degrees. The result is canonical and
// may use the crossing representation.
func (s *Sampler) SampleBox(src *random.Source, minSize, maxSize float64) (geom.BoundingBox, error) {
	if math.IsNaN(minSize) || math.IsNaN(maxSize) || minSize < 0 || maxSize < 0 || minSize > maxSize {
		return geom.BoundingBox{}, fmt.Errorf("%w: [%v %v]", ErrInvalidSizeRange, minSize, maxSize)
	}

	c := s.SamplePoint(src)
	w := src.NextUniformRange(minSize, maxSize)
	h := src.NextUniformRange(minSize, maxSize)
	return antimeridian.NormalizeBox(geom.BoundingBox{
		West:  c.Lon - w/2,
		South: c.Lat - h/2,
		East:  c.Lon + w/2,
		North: c.Lat + h/2,
	})
}
