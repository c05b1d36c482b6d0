package geom

import (
	"errors"

	"github.com/paulmach/orb"
)

// ErrNoData is returned when a computation has no coordinates to work with,
// e.g. bounds over an empty region.
var ErrNoData = errors.New("geom: no data")

// Geometry is either a Polygon or a MultiPolygon. A nil Geometry means the
// feature carried no usable coordinates.
type Geometry interface {
	geometry()
}

// Polygon holds rings in planar coordinates: first outer, following holes.
type Polygon struct {
	Rings []orb.Ring
}

// MultiPolygon is a set of polygons, each a list of rings.
type MultiPolygon struct {
	Polygons []orb.Polygon
}

func (Polygon) geometry()      {}
func (MultiPolygon) geometry() {}

// Orb returns the geometry as an orb type for planar operations.
func Orb(g Geometry) orb.Geometry {
	switch g := g.(type) {
	case Polygon:
		return orb.Polygon(g.Rings)
	case MultiPolygon:
		return orb.MultiPolygon(g.Polygons)
	}
	return nil
}

// Feature is a single mapped region.
type Feature struct {
	ID         string
	Geometry   Geometry
	Properties map[string]string
}

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Center returns the midpoint of the box.
func (b BBox) Center() orb.Point {
	return orb.Point{b.MinX + b.Width()/2, b.MinY + b.Height()/2}
}

func (b BBox) Bound() orb.Bound {
	return orb.Bound{Min: orb.Point{b.MinX, b.MinY}, Max: orb.Point{b.MaxX, b.MaxY}}
}

// Expand grows the box by fraction of its own width/height on each side.
func (b BBox) Expand(fraction float64) BBox {
	px := b.Width() * fraction
	py := b.Height() * fraction
	return BBox{MinX: b.MinX - px, MinY: b.MinY - py, MaxX: b.MaxX + px, MaxY: b.MaxY + py}
}

// FlipY mirrors a geometry across the X axis. Used to normalize datasets
// stored in screen orientation (Y down) to the Y-up convention the fit expects.
func FlipY(g Geometry) Geometry {
	flipRing := func(r orb.Ring) orb.Ring {
		out := make(orb.Ring, len(r))
		for i, p := range r {
			out[i] = orb.Point{p[0], -p[1]}
		}
		return out
	}
	flipPoly := func(rings []orb.Ring) []orb.Ring {
		out := make([]orb.Ring, len(rings))
		for i, r := range rings {
			out[i] = flipRing(r)
		}
		return out
	}
	switch g := g.(type) {
	case Polygon:
		return Polygon{Rings: flipPoly(g.Rings)}
	case MultiPolygon:
		mp := make([]orb.Polygon, len(g.Polygons))
		for i, poly := range g.Polygons {
			mp[i] = orb.Polygon(flipPoly(poly))
		}
		return MultiPolygon{Polygons: mp}
	}
	return nil
}
