package kdtree

import (
	"math"
)

const (
	DimX int = 0
	DimY int = 1
)

// Point is an immutable 2D point. Equality is exact coordinate equality.
type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Return the value X_{dim}, dim is DimX or DimY
func (p Point) GetValue(dim int) (val float64) {
	if dim == DimX {
		val = p.X
	} else {
		val = p.Y
	}
	return
}

func (p Point) Equals(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Point) DistanceSquaredTo(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// Valid reports whether both coordinates are finite.
func (p Point) Valid() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func (p Point) String() string {
	return "(" + formatFloat(p.X) + ", " + formatFloat(p.Y) + ")"
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
