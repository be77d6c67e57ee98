// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package affine implements 2D affine transforms that map a normalized sampling
// domain onto geographic bounding boxes.
package affine

import (
	"errors"
	"fmt"
	"math"

	"github.com/2dChan/geogen/geom"
	"gonum.org/v1/gonum/mat"
)

const (
	defaultEps = 1e-12
)

var ErrSingularMatrix = errors.New("affine: singular matrix")

// UnitSquare is the normalized sampling domain [0,1)x[0,1).
var UnitSquare = geom.BoundingBox{West: 0, South: 0, East: 1, North: 1}

// Transform is the affine map
//
//	x' = a*x + b*y + e
//	y' = c*x + d*y + f
//
// The zero value is not a valid transform; use New or one of the factories.
type Transform struct {
	a, b, c, d, e, f float64
}

// New returns the transform with the given coefficients.
// It returns ErrSingularMatrix if the determinant is zero within tolerance.
func New(a, b, c, d, e, f float64) (Transform, error) {
	t := Transform{a: a, b: b, c: c, d: d, e: e, f: f}
	if err := t.check(); err != nil {
		return Transform{}, err
	}
	return t, nil
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{a: 1, d: 1}
}

// FromBoundingBox returns the axis-aligned transform mapping domain onto target.
// A crossing target is unwrapped so that its image is continuous in longitude
// and may exceed 180.
func FromBoundingBox(domain, target geom.BoundingBox) (Transform, error) {
	dw, dh := domain.East-domain.West, domain.North-domain.South
	if dw == 0 || dh == 0 {
		return Transform{}, fmt.Errorf("%w: empty domain %v", ErrSingularMatrix, domain)
	}
	west, east := target.West, target.East
	if target.Crossing() {
		east += 360
	}
	a := (east - west) / dw
	d := (target.North - target.South) / dh
	return New(a, 0, 0, d, west-a*domain.West, target.South-d*domain.South)
}

// FromPoints returns the transform mapping each src point onto the matching dst point.
// It supports rotated and sheared sampling regions.
func FromPoints(src, dst [3][2]float64) (Transform, error) {
	// [x', y'] = [a, b, e; c, d, f] * [x, y, 1]
	A := mat.NewDense(6, 6, nil)
	B := mat.NewVecDense(6, nil)
	for i := range 3 {
		x, y := src[i][0], src[i][1]
		A.Set(i*2, 0, x)
		A.Set(i*2, 1, y)
		A.Set(i*2, 4, 1)
		B.SetVec(i*2, dst[i][0])

		A.Set(i*2+1, 2, x)
		A.Set(i*2+1, 3, y)
		A.Set(i*2+1, 5, 1)
		B.SetVec(i*2+1, dst[i][1])
	}

	var p mat.VecDense
	if err := p.SolveVec(A, B); err != nil {
		return Transform{}, fmt.Errorf("%w: %v", ErrSingularMatrix, err)
	}
	return New(p.AtVec(0), p.AtVec(1), p.AtVec(2), p.AtVec(3), p.AtVec(4), p.AtVec(5))
}

// Apply maps (x, y) through the transform.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.a*x + t.b*y + t.e, t.c*x + t.d*y + t.f
}

// Determinant returns a*d - b*c.
func (t Transform) Determinant() float64 {
	return t.a*t.d - t.b*t.c
}

// Coefficients returns (a, b, c, d, e, f).
func (t Transform) Coefficients() [6]float64 {
	return [6]float64{t.a, t.b, t.c, t.d, t.e, t.f}
}

// Invert returns the inverse transform.
func (t Transform) Invert() (Transform, error) {
	if err := t.check(); err != nil {
		return Transform{}, err
	}
	inv := 1 / t.Determinant()
	return Transform{
		a: t.d * inv,
		b: -t.b * inv,
		c: -t.c * inv,
		d: t.a * inv,
		e: (t.b*t.f - t.d*t.e) * inv,
		f: (t.c*t.e - t.a*t.f) * inv,
	}, nil
}

// Compose returns the transform that applies other first and then t.
func (t Transform) Compose(other Transform) (Transform, error) {
	return New(
		t.a*other.a+t.b*other.c,
		t.a*other.b+t.b*other.d,
		t.c*other.a+t.d*other.c,
		t.c*other.b+t.d*other.d,
		t.a*other.e+t.b*other.f+t.e,
		t.c*other.e+t.d*other.f+t.f,
	)
}

func (t Transform) check() error {
	for _, v := range t.Coefficients() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite coefficient in %v", ErrSingularMatrix, t.Coefficients())
		}
	}
	if math.Abs(t.Determinant()) <= defaultEps {
		return fmt.Errorf("%w: determinant %g", ErrSingularMatrix, t.Determinant())
	}
	return nil
}
