package kdtree_test

import (
	"math/rand"
	stdtesting "testing"

	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/deepfabric/kdtree"
	"github.com/deepfabric/kdtree/pointset"
)

func Test(t *stdtesting.T) {
	gc.TestingT(t)
}

type oracleSuite struct {
	rand *rand.Rand
}

var _ = gc.Suite(&oracleSuite{})

func (s *oracleSuite) SetUpTest(c *gc.C) {
	s.rand = rand.New(rand.NewSource(42))
}

// coord returns a coordinate in domain order [min, max], snapped to a grid
// half of the time so that ties and boundary hits are common.
func (s *oracleSuite) coord(min, max float64) float64 {
	if s.rand.Intn(2) == 0 {
		return min + float64(s.rand.Intn(21))/20*(max-min)
	}
	return min + s.rand.Float64()*(max-min)
}

func (s *oracleSuite) randRect(domain kdtree.Rect) kdtree.Rect {
	x0, x1 := s.coord(domain.XMin, domain.XMax), s.coord(domain.XMin, domain.XMax)
	y0, y1 := s.coord(domain.YMin, domain.YMax), s.coord(domain.YMin, domain.YMax)
	switch s.rand.Intn(4) {
	case 0: //degenerate to a vertical segment
		x1 = x0
	case 1: //degenerate to a point
		x1, y1 = x0, y0
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return kdtree.Rect{XMin: x0, YMin: y0, XMax: x1, YMax: y1}
}

func (s *oracleSuite) fill(c *gc.C, kdt *kdtree.KdTree, ps *pointset.PointSet, size int) {
	domain := kdt.Domain()
	for i := 0; i < size; i++ {
		point := kdtree.Point{X: s.coord(domain.XMin, domain.XMax), Y: s.coord(domain.YMin, domain.YMax)}
		c.Assert(kdt.Insert(point), jc.ErrorIsNil)
		c.Assert(ps.Insert(point), jc.ErrorIsNil)
	}
	c.Assert(kdt.Size(), gc.Equals, ps.Size())
}

func (s *oracleSuite) checkAgainstOracle(c *gc.C, kdt *kdtree.KdTree, ps *pointset.PointSet, numQueries int) {
	domain := kdt.Domain()
	for i := 0; i < numQueries; i++ {
		rect := s.randRect(domain)
		got, err := kdt.Range(rect)
		c.Assert(err, jc.ErrorIsNil)
		want, err := ps.Range(rect)
		c.Assert(err, jc.ErrorIsNil)
		c.Assert(got, jc.SameContents, want, gc.Commentf("range %v", rect))

		//queries may fall slightly outside of the domain
		query := kdtree.Point{
			X: s.coord(domain.XMin-1, domain.XMax+1),
			Y: s.coord(domain.YMin-1, domain.YMax+1),
		}
		nearest, found, err := kdt.Nearest(query)
		c.Assert(err, jc.ErrorIsNil)
		wantNearest, wantFound, err := ps.Nearest(query)
		c.Assert(err, jc.ErrorIsNil)
		c.Assert(found, gc.Equals, wantFound)
		if !found {
			continue
		}
		c.Assert(nearest.DistanceSquaredTo(query), gc.Equals, wantNearest.DistanceSquaredTo(query),
			gc.Commentf("nearest to %v: %v, want %v", query, nearest, wantNearest))
		contained, err := kdt.Contains(nearest)
		c.Assert(err, jc.ErrorIsNil)
		c.Assert(contained, jc.IsTrue)
	}
}

func (s *oracleSuite) TestEmpty(c *gc.C) {
	s.checkAgainstOracle(c, kdtree.New(), pointset.New(), 20)
}

func (s *oracleSuite) TestSmall(c *gc.C) {
	for size := 1; size <= 20; size++ {
		kdt, ps := kdtree.New(), pointset.New()
		s.fill(c, kdt, ps, size)
		s.checkAgainstOracle(c, kdt, ps, 50)
	}
}

func (s *oracleSuite) TestLarge(c *gc.C) {
	kdt, ps := kdtree.New(), pointset.New()
	s.fill(c, kdt, ps, 5000)
	s.checkAgainstOracle(c, kdt, ps, 500)
}

func (s *oracleSuite) TestInterleaved(c *gc.C) {
	kdt, ps := kdtree.New(), pointset.New()
	for round := 0; round < 20; round++ {
		s.fill(c, kdt, ps, 50)
		s.checkAgainstOracle(c, kdt, ps, 20)
	}
}

func (s *oracleSuite) TestCustomDomain(c *gc.C) {
	domain, err := kdtree.NewRect(-100, 20, 100, 25)
	c.Assert(err, jc.ErrorIsNil)
	kdt, err := kdtree.NewWithDomain(domain)
	c.Assert(err, jc.ErrorIsNil)
	ps := pointset.New()
	s.fill(c, kdt, ps, 2000)
	s.checkAgainstOracle(c, kdt, ps, 200)
}

func (s *oracleSuite) TestRangeWholeDomain(c *gc.C) {
	kdt, ps := kdtree.New(), pointset.New()
	s.fill(c, kdt, ps, 1000)
	points, err := kdt.Range(kdtree.UnitSquare)
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(points, gc.HasLen, ps.Size())
}
