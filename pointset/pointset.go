// Package pointset is a brute-force counterpart of kdtree.KdTree: points are
// kept in an ordered set and range and nearest queries scan all of them.
// It is meant as a correctness reference for the 2D-tree.
package pointset

import (
	"github.com/google/btree"
	"github.com/pkg/errors"

	"github.com/deepfabric/kdtree"
)

const degree = 32

type PointSet struct {
	points *btree.BTreeG[kdtree.Point]
}

// less orders points by y, then by x.
func less(a, b kdtree.Point) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

func New() *PointSet {
	return &PointSet{points: btree.NewG[kdtree.Point](degree, less)}
}

func (s *PointSet) IsEmpty() bool {
	return s.points.Len() == 0
}

func (s *PointSet) Size() int {
	return s.points.Len()
}

func (s *PointSet) Insert(point kdtree.Point) error {
	if !point.Valid() {
		return errors.Wrapf(kdtree.ErrInvalidInput, "Insert: malformed point %v", point)
	}
	s.points.ReplaceOrInsert(point)
	return nil
}

func (s *PointSet) Contains(point kdtree.Point) (bool, error) {
	if !point.Valid() {
		return false, errors.Wrapf(kdtree.ErrInvalidInput, "Contains: malformed point %v", point)
	}
	return s.points.Has(point), nil
}

// Range returns the points inside rect in (y, x) order.
func (s *PointSet) Range(rect kdtree.Rect) ([]kdtree.Point, error) {
	if !rect.Valid() {
		return nil, errors.Wrapf(kdtree.ErrInvalidInput, "Range: malformed rectangle %v", rect)
	}
	var points []kdtree.Point
	s.points.Ascend(func(point kdtree.Point) bool {
		if rect.Contains(point) {
			points = append(points, point)
		}
		return true
	})
	return points, nil
}

// Nearest returns the first point in (y, x) order among those closest to query.
func (s *PointSet) Nearest(query kdtree.Point) (nearest kdtree.Point, found bool, err error) {
	if !query.Valid() {
		err = errors.Wrapf(kdtree.ErrInvalidInput, "Nearest: malformed point %v", query)
		return
	}
	var bestDist float64
	s.points.Ascend(func(point kdtree.Point) bool {
		dist := point.DistanceSquaredTo(query)
		if !found || dist < bestDist {
			nearest, bestDist, found = point, dist, true
		}
		return true
	})
	return
}
