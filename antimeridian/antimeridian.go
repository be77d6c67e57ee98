// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package antimeridian normalizes coordinates and boxes around the ±180° meridian.
//
// Canonical longitudes lie in [-180, 180), for box edges as well as points.
// A canonical box uses West > East to signal that it spans through the
// antimeridian, so a box whose east edge lies on the seam is crossing with
// East = -180.
package antimeridian

import (
	"errors"
	"fmt"
	"math"

	"github.com/2dChan/geogen/geom"
)

var (
	ErrDegenerateBox    = errors.New("antimeridian: degenerate box")
	ErrInvertedLatitude = errors.New("antimeridian: south above north")
)

// NormalizeLongitude wraps lon into [-180, 180).
func NormalizeLongitude(lon float64) float64 {
	m := math.Mod(lon+180, 360)
	if m < 0 {
		m += 360
	}
	// m += 360 can round a tiny negative up to 360.
	if m >= 360 {
		m = 0
	}
	return m - 180
}

// ClampLatitude clamps lat into [-90, 90].
func ClampLatitude(lat float64) float64 {
	return math.Max(-90, math.Min(90, lat))
}

// NormalizePoint returns the canonical coordinate for (lon, lat). Longitude
// is wrapped and latitude is clamped.
func NormalizePoint(lon, lat float64) geom.Coordinate {
	return geom.Coordinate{Lon: NormalizeLongitude(lon), Lat: ClampLatitude(lat)}
}

// NormalizeBox returns the canonical form of box.
//
// Box may be given with raw longitudes outside [-180, 180) or already in the
// crossing representation. It returns ErrDegenerateBox when its longitude span
// is 360° or more and ErrInvertedLatitude when South > North.
func NormalizeBox(box geom.BoundingBox) (geom.BoundingBox, error) {
	for _, v := range [4]float64{box.West, box.South, box.East, box.North} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return geom.BoundingBox{}, fmt.Errorf("%w: non-finite bound in %v", ErrDegenerateBox, box)
		}
	}
	width := box.East - box.West
	if width < 0 {
		width += 360
	}
	if width < 0 || width >= 360 {
		return geom.BoundingBox{}, fmt.Errorf("%w: width %g in %v", ErrDegenerateBox, width, box)
	}
	if box.South > box.North {
		return geom.BoundingBox{}, fmt.Errorf("%w: %v", ErrInvertedLatitude, box)
	}

	return geom.BoundingBox{
		West:  NormalizeLongitude(box.West),
		South: ClampLatitude(box.South),
		East:  NormalizeLongitude(box.East),
		North: ClampLatitude(box.North),
	}, nil
}

// Split returns box as non-crossing boxes whose union is box. A crossing box
// is cut at the antimeridian into its [West, 180] and [-180, East] parts;
// any other box is returned as is. A crossing box ending on the seam
// (East = -180) has an empty east part and yields only [West, 180].
func Split(box geom.BoundingBox) []geom.BoundingBox {
	if !box.Crossing() {
		return []geom.BoundingBox{box}
	}
	parts := []geom.BoundingBox{
		{West: box.West, South: box.South, East: 180, North: box.North},
	}
	if box.East > -180 {
		parts = append(parts, geom.BoundingBox{West: -180, South: box.South, East: box.East, North: box.North})
	}
	return parts
}

// Unwrap returns the longitude span of box as a continuous interval, with
// east above 180 for a crossing box.
func Unwrap(box geom.BoundingBox) (west, east float64) {
	if box.Crossing() {
		return box.West, box.East + 360
	}
	return box.West, box.East
}
