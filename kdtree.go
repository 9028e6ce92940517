package kdtree

import (
	"github.com/juju/loggo"
	"github.com/pkg/errors"
)

var logger = loggo.GetLogger("kdtree")

// KdTree is a 2D-tree over a fixed rectangular domain. Each node stores one
// point and splits the region of its subtree in two halves, by x at even
// depth and by y at odd depth.
//
// The zero value is an empty KdTree over UnitSquare.
//
// A KdTree is not safe for concurrent use. Concurrent readers are fine as
// long as no Insert is in flight.
type KdTree struct {
	root      *node
	domain    Rect
	hasDomain bool //false means UnitSquare
}

// New creates an empty KdTree over UnitSquare.
func New() *KdTree {
	return &KdTree{}
}

// NewWithDomain creates an empty KdTree over domain. All inserted points must lie within it.
func NewWithDomain(domain Rect) (t *KdTree, err error) {
	if !domain.Valid() {
		err = invalidRect("NewWithDomain", domain)
		return
	}
	t = &KdTree{domain: domain, hasDomain: true}
	return
}

func (t *KdTree) Domain() Rect {
	if !t.hasDomain {
		return UnitSquare
	}
	return t.domain
}

func (t *KdTree) IsEmpty() bool {
	return t.root == nil
}

// Size returns the number of distinct points in the tree.
func (t *KdTree) Size() int {
	return size(t.root)
}

// Height returns the number of nodes on the longest root-to-leaf path, 0 for an empty tree.
func (t *KdTree) Height() int {
	return height(t.root)
}

//Insert inserts given point. Inserting a point already in the tree is a no-op.
//Fail if the point is malformed or outside of the domain, in which case the tree is unchanged.
func (t *KdTree) Insert(point Point) (err error) {
	if !point.Valid() {
		return invalidPoint("Insert", point)
	}
	domain := t.Domain()
	if !domain.Contains(point) {
		return errors.Wrapf(ErrInvalidInput, "Insert: point %v is outside of domain %v", point, domain)
	}
	t.root = t.insert(t.root, domain, point, 0)
	return
}

func (t *KdTree) insert(n *node, rect Rect, point Point, depth int) *node {
	if n == nil {
		return newNode(point, rect)
	}
	if n.point.Equals(point) {
		logger.Tracef("point %v already present, ignored", point)
		return n
	}
	onX := splitsOnX(depth)
	if n.isLower(point, onX) {
		n.left = t.insert(n.left, lowerRect(n.rect, n.point, onX), point, depth+1)
	} else {
		n.right = t.insert(n.right, upperRect(n.rect, n.point, onX), point, depth+1)
	}
	n.count = 1 + size(n.left) + size(n.right)
	return n
}

// Contains reports whether point is stored in the tree. Points outside of the domain are never contained.
func (t *KdTree) Contains(point Point) (found bool, err error) {
	if !point.Valid() {
		err = invalidPoint("Contains", point)
		return
	}
	n := t.root
	for depth := 0; n != nil; depth++ {
		if n.point.Equals(point) {
			found = true
			return
		}
		if n.isLower(point, splitsOnX(depth)) {
			n = n.left
		} else {
			n = n.right
		}
	}
	return
}
