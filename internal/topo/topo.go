// Package topo decodes TopoJSON topologies into plain polygon features.
package topo

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/paulmach/orb"

	"civicmap/internal/geom"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrNotTopology     = errors.New("topojson: not a Topology")
	ErrObjectNotFound  = errors.New("topojson: object not found")
	errArcOutOfRange   = errors.New("topojson: arc index out of range")
	errUnsupportedArcs = errors.New("topojson: malformed arcs")
)

// Transform is the quantization transform of a topology.
type Transform struct {
	Scale     [2]float64 `json:"scale"`
	Translate [2]float64 `json:"translate"`
}

type Topology struct {
	Type      string                         `json:"type"`
	BBox      []float64                      `json:"bbox,omitempty"`
	Transform *Transform                     `json:"transform,omitempty"`
	Arcs      [][][]float64                  `json:"arcs"`
	Objects   map[string]jsoniter.RawMessage `json:"objects"`

	// absolute arc coordinates, filled by Decode
	arcs [][]orb.Point
}

type object struct {
	Type       string              `json:"type"`
	ID         any                 `json:"id"`
	Properties map[string]any      `json:"properties"`
	Arcs       jsoniter.RawMessage `json:"arcs"`
	Geometries []object            `json:"geometries"`
}

// Decode reads a topology and resolves its arcs to absolute coordinates.
func Decode(r io.Reader) (*Topology, error) {
	var t Topology
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("topojson: %w", err)
	}
	if t.Type != "Topology" {
		return nil, ErrNotTopology
	}
	t.arcs = make([][]orb.Point, len(t.Arcs))
	for i, arc := range t.Arcs {
		t.arcs[i] = t.decodeArc(arc)
	}
	return &t, nil
}

// decodeArc undoes delta encoding and quantization when the topology has a
// transform; otherwise positions are already absolute.
func (t *Topology) decodeArc(arc [][]float64) []orb.Point {
	pts := make([]orb.Point, 0, len(arc))
	var x, y float64
	for _, pos := range arc {
		if len(pos) < 2 {
			continue
		}
		if t.Transform == nil {
			pts = append(pts, orb.Point{pos[0], pos[1]})
			continue
		}
		x += pos[0]
		y += pos[1]
		pts = append(pts, orb.Point{
			x*t.Transform.Scale[0] + t.Transform.Translate[0],
			y*t.Transform.Scale[1] + t.Transform.Translate[1],
		})
	}
	return pts
}

// ObjectNames lists the named geometry collections, sorted.
func (t *Topology) ObjectNames() []string {
	names := make([]string, 0, len(t.Objects))
	for k := range t.Objects {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Features converts the named object to features. Geometries that are not
// polygonal, or whose arcs cannot be resolved, come back with a nil Geometry
// so one bad entry does not drop the rest.
func (t *Topology) Features(name string, flipY bool) ([]geom.Feature, error) {
	raw, ok := t.Objects[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrObjectNotFound, name, strings.Join(t.ObjectNames(), ", "))
	}
	var o object
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, fmt.Errorf("topojson: object %q: %w", name, err)
	}
	var out []geom.Feature
	var walk func(o object)
	walk = func(o object) {
		if o.Type == "GeometryCollection" {
			for _, g := range o.Geometries {
				walk(g)
			}
			return
		}
		g, err := t.geometry(o)
		if err != nil {
			g = nil
		}
		if flipY && g != nil {
			g = geom.FlipY(g)
		}
		out = append(out, geom.Feature{
			ID:         geom.IDString(o.ID),
			Geometry:   g,
			Properties: geom.StringProperties(o.Properties),
		})
	}
	walk(o)
	return out, nil
}

func (t *Topology) geometry(o object) (geom.Geometry, error) {
	switch o.Type {
	case "Polygon":
		var arcs [][]int
		if err := json.Unmarshal(o.Arcs, &arcs); err != nil {
			return nil, errUnsupportedArcs
		}
		rings, err := t.polygon(arcs)
		if err != nil {
			return nil, err
		}
		return geom.Polygon{Rings: rings}, nil
	case "MultiPolygon":
		var arcs [][][]int
		if err := json.Unmarshal(o.Arcs, &arcs); err != nil {
			return nil, errUnsupportedArcs
		}
		polys := make([]orb.Polygon, 0, len(arcs))
		for _, p := range arcs {
			rings, err := t.polygon(p)
			if err != nil {
				return nil, err
			}
			polys = append(polys, orb.Polygon(rings))
		}
		return geom.MultiPolygon{Polygons: polys}, nil
	}
	return nil, nil
}

func (t *Topology) polygon(arcs [][]int) ([]orb.Ring, error) {
	rings := make([]orb.Ring, 0, len(arcs))
	for _, r := range arcs {
		ring, err := t.ring(r)
		if err != nil {
			return nil, err
		}
		rings = append(rings, ring)
	}
	return rings, nil
}

// ring stitches arcs end to end. Adjacent arcs share an endpoint, so the
// last point is dropped before each arc is appended. A negative index ~i
// means arc i traversed backwards.
func (t *Topology) ring(indexes []int) (orb.Ring, error) {
	var pts orb.Ring
	for _, i := range indexes {
		rev := i < 0
		if rev {
			i = ^i
		}
		if i >= len(t.arcs) {
			return nil, errArcOutOfRange
		}
		arc := t.arcs[i]
		if len(pts) > 0 {
			pts = pts[:len(pts)-1]
		}
		start := len(pts)
		pts = append(pts, arc...)
		if rev {
			for a, b := start, len(pts)-1; a < b; a, b = a+1, b-1 {
				pts[a], pts[b] = pts[b], pts[a]
			}
		}
	}
	for len(pts) > 0 && len(pts) < 4 {
		pts = append(pts, pts[0])
	}
	return pts, nil
}
