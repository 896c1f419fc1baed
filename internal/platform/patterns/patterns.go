// Package patterns generates natural mouse movement shapes for the random
// jiggle mode.
package patterns

import (
	"math"
	"math/rand"
	"time"
)

// Movement tuning constants.
const (
	// Jiggle size bounds in pixels.
	MinSizePixels = 5.0
	MaxSizePixels = 20.0

	// Timing characteristics for individual movements (in seconds).
	BaseDelayMinSeconds = 0.005
	BaseDelayMaxSeconds = 0.06
	ReturnDelayMin      = 0.01
	ReturnDelayMax      = 0.05

	// Pause characteristics (simulates a user briefly stopping).
	PauseProbability = 0.12
	PauseDurationMin = 0.05
	PauseDurationMax = 0.15

	// Speed factors.
	SpeedFactorMin        = 0.7
	SpeedFactorMax        = 1.3
	SpeedFactorLongDist   = 1.2
	LongDistanceThreshold = 10.0
)

// Point is an offset from the jiggle origin in pixels.
type Point struct {
	X float64
	Y float64
}

// Generator produces randomized movement patterns.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator creates a pattern generator backed by the given random source.
func NewGenerator(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

// GenerateShapePoints returns a random movement pattern of origin-relative
// offsets, each within MaxSizePixels of the origin.
func (g *Generator) GenerateShapePoints() []Point {
	shapeType := g.rnd.Intn(4) // 0=circle, 1=square, 2=zigzag, 3=random walk

	size := MinSizePixels + g.rnd.Float64()*(MaxSizePixels-MinSizePixels)
	numPoints := 4 + g.rnd.Intn(8) // 4-11 points

	switch shapeType {
	case 0:
		return g.buildCirclePoints(numPoints, size)
	case 1:
		return g.buildSquarePoints(numPoints, size)
	case 2:
		return g.buildZigZagPoints(numPoints, size)
	default:
		return g.buildRandomWalkPoints(numPoints, size)
	}
}

func (g *Generator) buildCirclePoints(numPoints int, size float64) []Point {
	points := make([]Point, 0, numPoints)
	for i := 0; i < numPoints; i++ {
		angle := 2 * math.Pi * float64(i) / float64(numPoints)
		points = append(points, Point{
			X: size * math.Cos(angle),
			Y: size * math.Sin(angle),
		})
	}
	return points
}

func (g *Generator) buildSquarePoints(numPoints int, size float64) []Point {
	side := int(math.Sqrt(float64(numPoints)))
	if side < 2 {
		side = 2
	}

	points := make([]Point, 0, side*4)

	// Top edge
	for i := 0; i < side; i++ {
		points = append(points, Point{
			X: size * float64(i) / float64(side-1),
			Y: 0,
		})
	}
	// Right edge
	for i := 1; i < side; i++ {
		points = append(points, Point{
			X: size,
			Y: size * float64(i) / float64(side-1),
		})
	}
	// Bottom edge
	for i := side - 2; i >= 0; i-- {
		points = append(points, Point{
			X: size * float64(i) / float64(side-1),
			Y: size,
		})
	}
	// Left edge
	for i := side - 2; i > 0; i-- {
		points = append(points, Point{
			X: 0,
			Y: size * float64(i) / float64(side-1),
		})
	}

	return points
}

func (g *Generator) buildZigZagPoints(numPoints int, size float64) []Point {
	points := make([]Point, 0, numPoints)

	for i := 0; i < numPoints; i++ {
		x := size * float64(i) / float64(numPoints-1)
		y := size * 0.5
		if i%2 == 0 {
			y = -size * 0.5
		}
		points = append(points, Point{X: x, Y: y})
	}

	return points
}

func (g *Generator) buildRandomWalkPoints(numPoints int, size float64) []Point {
	points := make([]Point, 0, numPoints)

	x, y := 0.0, 0.0
	points = append(points, Point{X: 0, Y: 0})
	step := size / 3

	for i := 1; i < numPoints; i++ {
		angle := g.rnd.Float64() * 2 * math.Pi
		x += step * math.Cos(angle)
		y += step * math.Sin(angle)

		// Keep the walk from drifting outside the jiggle bounds.
		if math.Abs(x) > MaxSizePixels {
			x = math.Copysign(MaxSizePixels, x)
		}
		if math.Abs(y) > MaxSizePixels {
			y = math.Copysign(MaxSizePixels, y)
		}
		points = append(points, Point{X: x, Y: y})
	}

	return points
}

// SegmentDistance calculates the distance from a point to the next point
// (or back to the origin if it is the last one).
func SegmentDistance(points []Point, i int) float64 {
	if len(points) == 0 || i >= len(points) {
		return 0
	}

	pt := points[i]

	if i < len(points)-1 {
		next := points[i+1]
		dx := next.X - pt.X
		dy := next.Y - pt.Y
		return math.Sqrt(dx*dx + dy*dy)
	}

	return math.Sqrt(pt.X*pt.X + pt.Y*pt.Y)
}

// MovementDelay calculates a natural movement delay based on distance.
func (g *Generator) MovementDelay(distance float64) time.Duration {
	baseRange := BaseDelayMaxSeconds - BaseDelayMinSeconds
	baseDelay := BaseDelayMinSeconds + g.rnd.Float64()*baseRange

	speedFactor := SpeedFactorMin + g.rnd.Float64()*(SpeedFactorMax-SpeedFactorMin)
	if distance > LongDistanceThreshold {
		speedFactor *= SpeedFactorLongDist
	}

	return time.Duration(baseDelay * speedFactor * float64(time.Second))
}

// ShouldPause determines if a pause should be inserted between movements.
func (g *Generator) ShouldPause() bool {
	return g.rnd.Float64() < PauseProbability
}

// PauseDelay returns a random pause duration.
func (g *Generator) PauseDelay() time.Duration {
	rangeSeconds := PauseDurationMax - PauseDurationMin
	return time.Duration((PauseDurationMin + g.rnd.Float64()*rangeSeconds) * float64(time.Second))
}

// ReturnDelay returns a random delay before the final move back to origin.
func (g *Generator) ReturnDelay() time.Duration {
	rangeSeconds := ReturnDelayMax - ReturnDelayMin
	return time.Duration((ReturnDelayMin + g.rnd.Float64()*rangeSeconds) * float64(time.Second))
}
