package geom

import "github.com/paulmach/orb"

// accumulator grows a box point by point; the first point seeds it.
type accumulator struct {
	bbox BBox
	n    int
}

func (a *accumulator) add(p orb.Point) {
	if a.n == 0 {
		a.bbox = BBox{MinX: p[0], MinY: p[1], MaxX: p[0], MaxY: p[1]}
	} else {
		if p[0] < a.bbox.MinX {
			a.bbox.MinX = p[0]
		}
		if p[1] < a.bbox.MinY {
			a.bbox.MinY = p[1]
		}
		if p[0] > a.bbox.MaxX {
			a.bbox.MaxX = p[0]
		}
		if p[1] > a.bbox.MaxY {
			a.bbox.MaxY = p[1]
		}
	}
	a.n++
}

func (a *accumulator) addRings(rings []orb.Ring) {
	for _, ring := range rings {
		for _, p := range ring {
			a.add(p)
		}
	}
}

func (a *accumulator) addGeometry(g Geometry) {
	switch g := g.(type) {
	case Polygon:
		a.addRings(g.Rings)
	case MultiPolygon:
		for _, poly := range g.Polygons {
			a.addRings(poly)
		}
	}
}

// GeometryBounds returns the bounding box of a single geometry. ok is false
// when the geometry has no coordinates.
func GeometryBounds(g Geometry) (bbox BBox, ok bool) {
	var a accumulator
	a.addGeometry(g)
	return a.bbox, a.n > 0
}

// Bounds returns the bounding box over every point of every feature. It
// returns ErrNoData when there are no features or none of them carries
// coordinates.
func Bounds(features []Feature) (BBox, error) {
	var a accumulator
	for _, f := range features {
		a.addGeometry(f.Geometry)
	}
	if a.n == 0 {
		return BBox{}, ErrNoData
	}
	return a.bbox, nil
}
