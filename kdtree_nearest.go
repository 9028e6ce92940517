package kdtree

type nearestSearch struct {
	query      Point
	best       Point
	bestDist   float64
	numVisited int
}

//Nearest returns the point closest to query. found is false if the tree is empty.
//Among equally close points, the one visited last wins, so callers shall not rely on which is returned.
func (t *KdTree) Nearest(query Point) (nearest Point, found bool, err error) {
	if !query.Valid() {
		err = invalidPoint("Nearest", query)
		return
	}
	if t.root == nil {
		return
	}
	s := &nearestSearch{
		query:    query,
		best:     t.root.point,
		bestDist: t.root.point.DistanceSquaredTo(query),
	}
	s.search(t.root, 0)
	logger.Tracef("nearest to %v: %v, visited %d of %d nodes", query, s.best, s.numVisited, t.Size())
	nearest, found = s.best, true
	return
}

func (s *nearestSearch) search(n *node, depth int) {
	s.numVisited++
	if dist := n.point.DistanceSquaredTo(s.query); dist <= s.bestDist {
		s.best, s.bestDist = n.point, dist
	}
	near, far := n.right, n.left
	if n.isLower(s.query, splitsOnX(depth)) {
		near, far = n.left, n.right
	}
	if near != nil {
		s.search(near, depth+1)
	}
	//far subtree can hold a closer point only if its rectangle is closer than the best so far
	if far != nil && far.rect.DistanceSquaredTo(s.query) < s.bestDist {
		s.search(far, depth+1)
	}
}
