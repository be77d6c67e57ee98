// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides helpers for converting generated coordinates to S2 types.

package utils

import (
	"github.com/2dChan/geogen/antimeridian"
	"github.com/2dChan/geogen/geom"
	"github.com/2dChan/geogen/random"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// GenerateRandomPoints generates cnt coordinates uniform in longitude and
// latitude over the whole globe. It is the unbiased baseline for the
// continent sampler. The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64) []geom.Coordinate {
	src := random.NewSource(seed)
	coords := make([]geom.Coordinate, cnt)

	for i := range cnt {
		lon := src.NextUniformRange(-180, 180)
		lat := src.NextUniformRange(-90, 90)
		coords[i] = antimeridian.NormalizePoint(lon, lat)
	}

	return coords
}

// PointVector converts coordinates to points on the S2 sphere.
func PointVector(coords []geom.Coordinate) s2.PointVector {
	points := make(s2.PointVector, len(coords))
	for i, c := range coords {
		points[i] = c.Point()
	}
	return points
}

// RectBound returns an s2.Rect containing coords, growing the longitude
// interval in the shorter direction for each point. Longitudes that straddle
// the antimeridian produce an inverted longitude interval.
func RectBound(coords []geom.Coordinate) s2.Rect {
	r := s2.EmptyRect()
	for _, c := range coords {
		r = r.AddPoint(c.LatLng())
	}
	return r
}

// BoxFromRect converts r to a canonical bounding box.
// It returns an error if r is empty or spans the full circle of longitude.
func BoxFromRect(r s2.Rect) (geom.BoundingBox, error) {
	west := s1.Angle(r.Lng.Lo).Degrees()
	east := s1.Angle(r.Lng.Hi).Degrees()
	if r.Lng.IsInverted() {
		east += 360
	}
	return antimeridian.NormalizeBox(geom.BoundingBox{
		West:  west,
		South: s1.Angle(r.Lat.Lo).Degrees(),
		East:  east,
		North: s1.Angle(r.Lat.Hi).Degrees(),
	})
}
