// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import (
	"math"
	"testing"
)

func TestBoundingBox_Width(t *testing.T) {
	tests := []struct {
		name string
		box  BoundingBox
		want float64
	}{
		{"plain", BoundingBox{0, 0, 10, 10}, 10},
		{"line", BoundingBox{5, 0, 5, 10}, 0},
		{"crossing", BoundingBox{170, 0, -170, 10}, 20},
		{"crossing wide", BoundingBox{10, 0, 5, 10}, 355},
		{"seam east", BoundingBox{170, 0, 180, 10}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.Width(); got != tt.want {
				t.Errorf("%v.Width() = %v, want %v", tt.box, got, tt.want)
			}
		})
	}
}

func TestBoundingBox_Contains(t *testing.T) {
	tests := []struct {
		name string
		box  BoundingBox
		c    Coordinate
		want bool
	}{
		{"inside", BoundingBox{0, 0, 10, 10}, Coordinate{5, 5}, true},
		{"edge", BoundingBox{0, 0, 10, 10}, Coordinate{10, 0}, true},
		{"outside lon", BoundingBox{0, 0, 10, 10}, Coordinate{11, 5}, false},
		{"outside lat", BoundingBox{0, 0, 10, 10}, Coordinate{5, -1}, false},
		{"crossing west part", BoundingBox{170, 0, -170, 10}, Coordinate{175, 5}, true},
		{"crossing east part", BoundingBox{170, 0, -170, 10}, Coordinate{-175, 5}, true},
		{"crossing seam", BoundingBox{170, 0, -170, 10}, Coordinate{-180, 5}, true},
		{"crossing gap", BoundingBox{170, 0, -170, 10}, Coordinate{0, 5}, false},
		{"seam east edge", BoundingBox{170, 0, 180, 10}, Coordinate{-180, 5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.Contains(tt.c); got != tt.want {
				t.Errorf("%v.Contains(%v) = %v, want %v", tt.box, tt.c, got, tt.want)
			}
		})
	}
}

func TestBoundingBox_Rect(t *testing.T) {
	box := BoundingBox{170, 0, -170, 10}
	r := box.Rect()
	if !r.Lng.IsInverted() {
		t.Errorf("%v.Rect().Lng.IsInverted() = false, want true", box)
	}
	for _, c := range []Coordinate{{175, 5}, {-175, 5}} {
		if !r.ContainsLatLng(c.LatLng()) {
			t.Errorf("%v.Rect().ContainsLatLng(%v) = false, want true", box, c)
		}
	}
	if r.ContainsLatLng(Coordinate{0, 5}.LatLng()) {
		t.Errorf("%v.Rect().ContainsLatLng(POINT (0 5)) = true, want false", box)
	}

	got := r.Lng.Length() * 180 / math.Pi
	if math.Abs(got-box.Width()) > 1e-9 {
		t.Errorf("%v.Rect().Lng.Length() = %v deg, want %v", box, got, box.Width())
	}
}

func TestCoordinate_String(t *testing.T) {
	c := Coordinate{Lon: -160, Lat: 90}
	if got, want := c.String(), "POINT (-160 90)"; got != want {
		t.Errorf("c.String() = %q, want %q", got, want)
	}
}

func TestBoundingBox_String(t *testing.T) {
	b := BoundingBox{0, 0, 10, 2.5}
	want := "POLYGON ((0 0, 10 0, 10 2.5, 0 2.5, 0 0))"
	if got := b.String(); got != want {
		t.Errorf("b.String() = %q, want %q", got, want)
	}
}
