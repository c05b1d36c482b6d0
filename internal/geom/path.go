package geom

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// Path renders a geometry as an SVG path description in its native
// coordinates. Every ring becomes a closed sub-path (M, L..., Z). Missing or
// empty geometry renders as "".
func Path(g Geometry) string {
	return writePath(g, nil)
}

// TransformedPath is Path with every point mapped through fit first.
func TransformedPath(g Geometry, fit Fit) string {
	return writePath(g, fit.Apply)
}

func writePath(g Geometry, xf func(orb.Point) orb.Point) string {
	var sb strings.Builder
	switch g := g.(type) {
	case Polygon:
		for _, r := range g.Rings {
			writeRing(&sb, r, xf)
		}
	case MultiPolygon:
		for _, poly := range g.Polygons {
			for _, r := range poly {
				writeRing(&sb, r, xf)
			}
		}
	}
	return sb.String()
}

func writeRing(sb *strings.Builder, r orb.Ring, xf func(orb.Point) orb.Point) {
	if len(r) == 0 {
		return
	}
	var buf []byte
	point := func(cmd byte, p orb.Point) {
		if xf != nil {
			p = xf(p)
		}
		buf = append(buf[:0], cmd)
		buf = strconv.AppendFloat(buf, p[0], 'f', -1, 64)
		buf = append(buf, ',')
		buf = strconv.AppendFloat(buf, p[1], 'f', -1, 64)
		sb.Write(buf)
	}
	point('M', r[0])
	for _, p := range r[1:] {
		point('L', p)
	}
	// rings are implicitly closed; spell out the closing segment when the
	// source omits the repeated first point
	if len(r) > 1 && !r[0].Equal(r[len(r)-1]) {
		point('L', r[0])
	}
	sb.WriteByte('Z')
}
