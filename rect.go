package kdtree

import (
	"strconv"
)

// Rect is an axis-aligned rectangle with inclusive bounds.
type Rect struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// UnitSquare is the default domain of a KdTree.
var UnitSquare = Rect{XMin: 0, YMin: 0, XMax: 1, YMax: 1}

//NewRect creates a Rect. Fail if a bound is not finite or a min bound exceeds its max bound.
func NewRect(xmin, ymin, xmax, ymax float64) (r Rect, err error) {
	r = Rect{XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax}
	if !r.Valid() {
		err = invalidRect("NewRect", r)
	}
	return
}

func (r Rect) Valid() bool {
	return isFinite(r.XMin) && isFinite(r.YMin) && isFinite(r.XMax) && isFinite(r.YMax) &&
		r.XMin <= r.XMax && r.YMin <= r.YMax
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.XMin && p.X <= r.XMax &&
		p.Y >= r.YMin && p.Y <= r.YMax
}

// ContainsRect reports whether other lies entirely within r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.XMin >= r.XMin && other.XMax <= r.XMax &&
		other.YMin >= r.YMin && other.YMax <= r.YMax
}

// Intersects is inclusive: rectangles sharing only an edge or a corner intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.XMax >= other.XMin && r.XMin <= other.XMax &&
		r.YMax >= other.YMin && r.YMin <= other.YMax
}

// DistanceSquaredTo returns the squared distance from p to the closest point of r, 0 if r contains p.
func (r Rect) DistanceSquaredTo(p Point) float64 {
	var dx, dy float64
	if p.X < r.XMin {
		dx = r.XMin - p.X
	} else if p.X > r.XMax {
		dx = p.X - r.XMax
	}
	if p.Y < r.YMin {
		dy = r.YMin - p.Y
	} else if p.Y > r.YMax {
		dy = p.Y - r.YMax
	}
	return dx*dx + dy*dy
}

func (r Rect) String() string {
	return "[" + formatFloat(r.XMin) + ", " + formatFloat(r.XMax) + "] x [" +
		formatFloat(r.YMin) + ", " + formatFloat(r.YMax) + "]"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
