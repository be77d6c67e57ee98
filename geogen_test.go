// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geogen

import (
	"errors"
	"fmt"
	"testing"

	"github.com/2dChan/geogen/continent"
	"github.com/2dChan/geogen/geom"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// GeneratorOptions

func TestWithWorker(t *testing.T) {
	tests := []struct {
		name    string
		worker  int
		wantErr bool
	}{
		{"worker zero", 0, false},
		{"worker positive", 7, false},
		{"worker negative", -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &GeneratorOptions{}
			err := WithWorker(tt.worker)(opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("WithWorker(%v) error = %v, wantErr %v", tt.worker, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidWorker) {
				t.Errorf("WithWorker(%v) error = %v, want ErrInvalidWorker", tt.worker, err)
			}
			if err == nil && opts.Worker != tt.worker {
				t.Errorf("WithWorker(%v) opts.Worker = %v, want %v", tt.worker, opts.Worker, tt.worker)
			}
		})
	}
}

func TestWithRegions(t *testing.T) {
	if err := WithRegions(nil)(&GeneratorOptions{}); !errors.Is(err, continent.ErrEmptyRegionTable) {
		t.Errorf("WithRegions(nil) error = %v, want ErrEmptyRegionTable", err)
	}
	if err := WithSampler(nil)(&GeneratorOptions{}); err == nil {
		t.Errorf("WithSampler(nil) error = nil, want non-nil")
	}
}

// Generator

func TestNewGenerator_Defaults(t *testing.T) {
	g := mustNewGenerator(t, 42)
	if g.Seed() != 42 || g.Worker() != 0 {
		t.Errorf("g.Seed(), g.Worker() = %v, %v, want 42, 0", g.Seed(), g.Worker())
	}
	if diff := cmp.Diff(continent.Default().Regions(), g.Regions()); diff != "" {
		t.Errorf("g.Regions() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewGenerator_InvalidRegions(t *testing.T) {
	regions := []continent.Region{{Name: "a", Box: geom.BoundingBox{West: 0, South: 0, East: 1, North: 1}}}
	if _, err := NewGenerator(1, WithRegions(regions)); !errors.Is(err, continent.ErrEmptyRegionTable) {
		t.Errorf("NewGenerator(1, WithRegions(all zero)) error = %v, want ErrEmptyRegionTable", err)
	}
}

func TestGenerator_TwoRegionScenario(t *testing.T) {
	regions := []continent.Region{
		{Name: "A", Box: geom.BoundingBox{West: 0, South: 0, East: 10, North: 10}, Weight: 1},
		{Name: "B", Box: geom.BoundingBox{West: 170, South: 0, East: 190, North: 10}, Weight: 1},
	}
	g := mustNewGenerator(t, 42, WithWorker(0), WithRegions(regions))

	got := g.Regions()
	wantB := geom.BoundingBox{West: 170, South: 0, East: -170, North: 10}
	if diff := cmp.Diff(wantB, got[1].Box); diff != "" {
		t.Fatalf("region B box mismatch (-want +got):\n%s", diff)
	}
	if !got[1].Box.Crossing() {
		t.Fatalf("region B box %v is not crossing", got[1].Box)
	}

	inB := 0
	for range 10000 {
		c := g.SamplePoint()
		switch {
		case got[0].Box.Contains(c):
		case got[1].Box.Contains(c):
			inB++
			if c.Lon < 170 && c.Lon > -170 {
				t.Fatalf("point %v in region B outside [170, -170]", c)
			}
		default:
			t.Fatalf("point %v in neither region", c)
		}
	}
	if inB == 0 {
		t.Errorf("no points drawn in region B")
	}
}

func TestGenerator_TwoRegionScenarioValues(t *testing.T) {
	regions := []continent.Region{
		{Name: "A", Box: geom.BoundingBox{West: 0, South: 0, East: 10, North: 10}, Weight: 1},
		{Name: "B", Box: geom.BoundingBox{West: 170, South: 0, East: 190, North: 10}, Weight: 1},
	}
	g := mustNewGenerator(t, 42, WithWorker(0), WithRegions(regions))

	want := []geom.Coordinate{
		{Lon: 3.6427676591118825, Lat: 7.421571849467138},
		{Lon: 175.81130337855285, Lat: 8.068611983553893},
		{Lon: 179.86130184145338, Lat: 6.85078623262023},
		{Lon: 9.21451319696024, Lat: 4.292112594793249},
	}
	got := make([]geom.Coordinate, len(want))
	for i := range got {
		got[i] = g.SamplePoint()
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("g.SamplePoint() sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerator_Determinism(t *testing.T) {
	for _, worker := range []int{0, 1, 5} {
		t.Run(fmt.Sprintf("worker %d", worker), func(t *testing.T) {
			a := samplePoints(t, mustNewGenerator(t, 42, WithWorker(worker)), 10000)
			b := samplePoints(t, mustNewGenerator(t, 42, WithWorker(worker)), 10000)
			if diff := cmp.Diff(a, b); diff != "" {
				t.Errorf("point streams differ (-first +second):\n%s", diff)
			}
		})
	}
}

func TestGenerator_Reset(t *testing.T) {
	g := mustNewGenerator(t, 3)
	a := samplePoints(t, g, 100)
	g.Reset()
	b := samplePoints(t, g, 100)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("points after Reset() differ (-before +after):\n%s", diff)
	}
}

func TestGenerator_RangeInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 1e6 draws in short mode")
	}
	sampler := continent.Default()
	for seed := range int64(100) {
		g := mustNewGenerator(t, seed*7919-300, WithSampler(sampler))
		for range 10000 {
			c := g.SamplePoint()
			if c.Lat < -90 || c.Lat > 90 || c.Lon < -180 || c.Lon >= 180 {
				t.Fatalf("seed %d: g.SamplePoint() = %v, out of range", g.Seed(), c)
			}
		}
	}
}

func TestGenerator_SampleBox(t *testing.T) {
	g := mustNewGenerator(t, 42)
	for range 10000 {
		b, err := g.SampleBox(0.01, 2)
		if err != nil {
			t.Fatalf("g.SampleBox(0.01, 2) error = %v, want nil", err)
		}
		if b.South > b.North || b.Width() > 2+1e-9 {
			t.Fatalf("g.SampleBox(0.01, 2) = %v, invalid", b)
		}
	}
	if _, err := g.SampleBox(3, 1); !errors.Is(err, continent.ErrInvalidSizeRange) {
		t.Errorf("g.SampleBox(3, 1) error = %v, want ErrInvalidSizeRange", err)
	}
}

// Benchmarks

func BenchmarkGenerator_SamplePoint(b *testing.B) {
	g, err := NewGenerator(0)
	if err != nil {
		b.Fatalf("NewGenerator(0) error = %v, want nil", err)
	}
	b.ReportAllocs()
	for b.Loop() {
		g.SamplePoint()
	}
}

func BenchmarkGenerator_SampleBox(b *testing.B) {
	g, err := NewGenerator(0)
	if err != nil {
		b.Fatalf("NewGenerator(0) error = %v, want nil", err)
	}
	b.ReportAllocs()
	for b.Loop() {
		if _, err := g.SampleBox(0.1, 1); err != nil {
			b.Fatalf("g.SampleBox(0.1, 1) error = %v, want nil", err)
		}
	}
}

// Helpers

func mustNewGenerator(t *testing.T, seed int64, opts ...GeneratorOption) *Generator {
	t.Helper()
	g, err := NewGenerator(seed, opts...)
	if err != nil {
		t.Fatalf("NewGenerator(%d, ...) error = %v, want nil", seed, err)
	}
	return g
}

func samplePoints(t *testing.T, g *Generator, n int) []geom.Coordinate {
	t.Helper()
	out := make([]geom.Coordinate, n)
	for i := range out {
		out[i] = g.SamplePoint()
	}
	return out
}
