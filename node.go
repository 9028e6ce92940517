package kdtree

// node stores one point and the region of the domain assigned to its subtree.
// rect is fixed at creation; only count changes afterwards.
type node struct {
	point Point
	rect  Rect
	left  *node //lower: x (or y) strictly less than point's
	right *node //upper
	count int   //number of nodes of subtree rooted at this node
}

func newNode(point Point, rect Rect) *node {
	return &node{
		point: point,
		rect:  rect,
		count: 1,
	}
}

func size(n *node) int {
	if n == nil {
		return 0
	}
	return n.count
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	hl, hr := height(n.left), height(n.right)
	if hl > hr {
		return hl + 1
	}
	return hr + 1
}

// splitsOnX reports whether nodes at depth compare x coordinates. The root is at depth 0.
func splitsOnX(depth int) bool {
	return depth%2 == 0
}

// splitDim is the coordinate compared by a node that splits on x (or y).
func splitDim(onX bool) int {
	if onX {
		return DimX
	}
	return DimY
}

func divideLeft(rect Rect, point Point) Rect {
	rect.XMax = point.X
	return rect
}

func divideRight(rect Rect, point Point) Rect {
	rect.XMin = point.X
	return rect
}

func divideDown(rect Rect, point Point) Rect {
	rect.YMax = point.Y
	return rect
}

func divideUp(rect Rect, point Point) Rect {
	rect.YMin = point.Y
	return rect
}

// lowerRect is the rectangle of the left child of a node holding point within rect.
func lowerRect(rect Rect, point Point, onX bool) Rect {
	if onX {
		return divideLeft(rect, point)
	}
	return divideDown(rect, point)
}

// upperRect is the rectangle of the right child of a node holding point within rect.
func upperRect(rect Rect, point Point, onX bool) Rect {
	if onX {
		return divideRight(rect, point)
	}
	return divideUp(rect, point)
}

// isLower reports whether p belongs to the lower side of n on the splitting axis.
func (n *node) isLower(p Point, onX bool) bool {
	dim := splitDim(onX)
	return p.GetValue(dim) < n.point.GetValue(dim)
}
