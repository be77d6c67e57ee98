// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package continent

import "github.com/2dChan/geogen/geom"

// DefaultRegions returns the built-in continental table.
//
// Boxes are the mainland and near-island extents of each continent in degrees.
// Weights are continental land areas in millions of km², as tabulated in the
// area column of the Wikipedia "Continent" article. Antarctica is left out:
// its box would span the whole circle of longitude. Asia and Oceania reach
// past the antimeridian and use the crossing representation.
//
// The table is configuration, not a calibrated model; pass a custom table to
// NewSampler to change it.
func DefaultRegions() []Region {
	return []Region{
		{Name: "asia", Box: geom.BoundingBox{West: 26.0, South: -11.0, East: -169.7, North: 77.7}, Weight: 44.58},
		{Name: "africa", Box: geom.BoundingBox{West: -17.6, South: -34.9, East: 51.4, North: 37.4}, Weight: 30.37},
		{Name: "north_america", Box: geom.BoundingBox{West: -168.1, South: 7.2, East: -52.6, North: 83.1}, Weight: 24.71},
		{Name: "south_america", Box: geom.BoundingBox{West: -81.4, South: -55.9, East: -34.8, North: 12.5}, Weight: 17.84},
		{Name: "europe", Box: geom.BoundingBox{West: -25.0, South: 34.8, East: 60.0, North: 71.2}, Weight: 10.18},
		{Name: "oceania", Box: geom.BoundingBox{West: 112.9, South: -47.3, East: -176.2, North: -0.9}, Weight: 8.60},
	}
}

// Default returns a Sampler over DefaultRegions.
func Default() *Sampler {
	s, err := NewSampler(DefaultRegions())
	if err != nil {
		panic("continent: invalid default region table: " + err.Error())
	}
	return s
}
