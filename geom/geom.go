// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package geom defines the coordinate value types produced by the generator.
package geom

import (
	"strconv"
	"strings"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Coordinate is a (longitude, latitude) pair in degrees.
//
// In canonical form Lat is in [-90, 90] and Lon is in [-180, 180).
type Coordinate struct {
	Lon float64
	Lat float64
}

// LatLng returns the coordinate as an s2.LatLng.
func (c Coordinate) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(c.Lat, c.Lon)
}

// Point returns the coordinate as a unit vector on the sphere.
func (c Coordinate) Point() s2.Point {
	return s2.PointFromLatLng(c.LatLng())
}

// String returns the coordinate in WKT.
func (c Coordinate) String() string {
	return "POINT (" + formatDeg(c.Lon) + " " + formatDeg(c.Lat) + ")"
}

// BoundingBox is a longitude/latitude box in degrees.
//
// South <= North always holds for a canonical box. West > East means the box
// spans through the antimeridian (canonical crossing representation).
type BoundingBox struct {
	West  float64
	South float64
	East  float64
	North float64
}

// Crossing reports whether the box uses the crossing representation.
func (b BoundingBox) Crossing() bool {
	return b.West > b.East
}

// Width returns the longitude extent in degrees, accounting for the crossing
// representation.
func (b BoundingBox) Width() float64 {
	if b.Crossing() {
		return b.East - b.West + 360
	}
	return b.East - b.West
}

// Height returns the latitude extent in degrees.
func (b BoundingBox) Height() float64 {
	return b.North - b.South
}

// ContainsLongitude reports whether lon lies within the longitude span of the box.
// Longitudes -180 and 180 denote the same meridian.
func (b BoundingBox) ContainsLongitude(lon float64) bool {
	if b.Crossing() {
		return lon >= b.West || lon <= b.East
	}
	if lon == -180 && b.East == 180 {
		return true
	}
	return lon >= b.West && lon <= b.East
}

// Contains reports whether c lies within the box, edges included.
func (b BoundingBox) Contains(c Coordinate) bool {
	return c.Lat >= b.South && c.Lat <= b.North && b.ContainsLongitude(c.Lon)
}

// Rect returns the box as an s2.Rect. Crossing boxes map onto inverted
// longitude intervals.
func (b BoundingBox) Rect() s2.Rect {
	return s2.Rect{
		Lat: r1.Interval{
			Lo: (s1.Angle(b.South) * s1.Degree).Radians(),
			Hi: (s1.Angle(b.North) * s1.Degree).Radians(),
		},
		Lng: s1.IntervalFromEndpoints(
			(s1.Angle(b.West)*s1.Degree).Radians(),
			(s1.Angle(b.East)*s1.Degree).Radians(),
		),
	}
}

// String returns the box as a closed WKT polygon ring over its raw bounds.
// A crossing box is not a valid planar polygon; split it first.
func (b BoundingBox) String() string {
	var sb strings.Builder
	sb.WriteString("POLYGON ((")
	corners := [5][2]float64{
		{b.West, b.South},
		{b.East, b.South},
		{b.East, b.North},
		{b.West, b.North},
		{b.West, b.South},
	}
	for i, c := range corners {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatDeg(c[0]))
		sb.WriteByte(' ')
		sb.WriteString(formatDeg(c[1]))
	}
	sb.WriteString("))")
	return sb.String()
}

func formatDeg(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
