package patterns

import (
	"math"
	"math/rand"
	"testing"
)

func TestGenerateShapePoints(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	gen := NewGenerator(rnd)

	// Generate multiple patterns to cover all shape types.
	for i := 0; i < 50; i++ {
		points := gen.GenerateShapePoints()
		if len(points) < 4 {
			t.Errorf("expected at least 4 points, got %d", len(points))
		}
	}
}

func TestGenerateShapePointsBounded(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	gen := NewGenerator(rnd)

	for i := 0; i < 100; i++ {
		for j, pt := range gen.GenerateShapePoints() {
			if math.Abs(pt.X) > MaxSizePixels || math.Abs(pt.Y) > MaxSizePixels {
				t.Fatalf("pattern %d point %d out of bounds: %+v", i, j, pt)
			}
		}
	}
}

func TestGenerateShapePointsDeterministic(t *testing.T) {
	// Same seed should produce same results.
	gen1 := NewGenerator(rand.New(rand.NewSource(12345)))
	points1 := gen1.GenerateShapePoints()

	gen2 := NewGenerator(rand.New(rand.NewSource(12345)))
	points2 := gen2.GenerateShapePoints()

	if len(points1) != len(points2) {
		t.Fatalf("point counts differ: %d vs %d", len(points1), len(points2))
	}

	for i := range points1 {
		if points1[i].X != points2[i].X || points1[i].Y != points2[i].Y {
			t.Errorf("point %d differs: %v vs %v", i, points1[i], points2[i])
		}
	}
}

func TestSegmentDistance(t *testing.T) {
	tests := []struct {
		name     string
		points   []Point
		index    int
		expected float64
	}{
		{
			name:     "empty points",
			points:   []Point{},
			index:    0,
			expected: 0,
		},
		{
			name:     "index out of range",
			points:   []Point{{X: 1, Y: 1}},
			index:    5,
			expected: 0,
		},
		{
			name:     "distance to next point",
			points:   []Point{{X: 0, Y: 0}, {X: 3, Y: 4}},
			index:    0,
			expected: 5,
		},
		{
			name:     "last point measures back to origin",
			points:   []Point{{X: 0, Y: 0}, {X: 3, Y: 4}},
			index:    1,
			expected: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentDistance(tt.points, tt.index)
			if got != tt.expected {
				t.Errorf("SegmentDistance() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMovementDelayPositive(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(1)))

	for _, distance := range []float64{0, 1, 5, 50} {
		for i := 0; i < 20; i++ {
			if d := gen.MovementDelay(distance); d <= 0 {
				t.Fatalf("MovementDelay(%v) = %v, want > 0", distance, d)
			}
		}
	}
}

func TestDelayRanges(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(2)))

	for i := 0; i < 50; i++ {
		if d := gen.PauseDelay().Seconds(); d < PauseDurationMin || d > PauseDurationMax {
			t.Errorf("PauseDelay() = %vs outside [%v, %v]", d, PauseDurationMin, PauseDurationMax)
		}
		if d := gen.ReturnDelay().Seconds(); d < ReturnDelayMin || d > ReturnDelayMax {
			t.Errorf("ReturnDelay() = %vs outside [%v, %v]", d, ReturnDelayMin, ReturnDelayMax)
		}
	}
}
