package kdtree

import (
	"github.com/pkg/errors"
)

type IntersectVisitor interface {
	GetRect() Rect
	VisitPoint(point Point)
}

// IntersectCollector collects every visited point.
type IntersectCollector struct {
	rect   Rect
	points []Point
}

func NewIntersectCollector(rect Rect) *IntersectCollector {
	return &IntersectCollector{rect: rect}
}

func (d *IntersectCollector) GetRect() Rect          { return d.rect }
func (d *IntersectCollector) VisitPoint(point Point) { d.points = append(d.points, point) }
func (d *IntersectCollector) Points() []Point        { return d.points }

//Intersect does window query. visitor.VisitPoint is called once for every point inside
//visitor.GetRect(), in pre-order of the tree.
func (t *KdTree) Intersect(visitor IntersectVisitor) (err error) {
	if visitor == nil {
		err = errors.Wrap(ErrInvalidInput, "Intersect: nil visitor")
		return
	}
	rect := visitor.GetRect()
	if !rect.Valid() {
		err = invalidRect("Intersect", rect)
		return
	}
	if t.root == nil || !t.root.rect.Intersects(rect) {
		return
	}
	if logger.IsTraceEnabled() {
		var numVisited int
		t.root.visit(rect, visitor, &numVisited)
		logger.Tracef("window %v: visited %d of %d nodes", rect, numVisited, t.Size())
		return
	}
	t.root.visit(rect, visitor, nil)
	return
}

// visit assumes n.rect intersects rect. Every descendant's rectangle lies within n.rect,
// so a child whose rectangle misses rect is skipped together with its subtree.
func (n *node) visit(rect Rect, visitor IntersectVisitor, numVisited *int) {
	if numVisited != nil {
		*numVisited++
	}
	if rect.Contains(n.point) {
		visitor.VisitPoint(n.point)
	}
	if n.left != nil && n.left.rect.Intersects(rect) {
		n.left.visit(rect, visitor, numVisited)
	}
	if n.right != nil && n.right.rect.Intersects(rect) {
		n.right.visit(rect, visitor, numVisited)
	}
}

// Range returns all points inside rect, bounds included. The order is unspecified.
func (t *KdTree) Range(rect Rect) (points []Point, err error) {
	collector := NewIntersectCollector(rect)
	if err = t.Intersect(collector); err != nil {
		return
	}
	points = collector.Points()
	return
}
