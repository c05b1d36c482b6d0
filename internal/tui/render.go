package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/paulmach/orb"

	"civicmap/internal/geom"
)

// renderMap rasterizes the current frame: regions are filled with their
// reference color and borders are left unlit so neighbours stay apart.
func (m Model) renderMap(w, h int) string {
	vp := geom.Viewport{Width: float64(w * 2), Height: float64(h * 4)}
	fr, err := m.view.Frame(vp)
	if errors.Is(err, geom.ErrNoData) {
		msg := dimStyle.Render("No map data for " + m.title())
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, msg)
	}

	br := newBrailleBuf(w, h)
	type shape struct {
		id    string
		polys [][]orb.Ring
	}
	shapes := make([]shape, 0, len(fr.Paths))
	for _, p := range fr.Paths {
		s := shape{id: p.ID, polys: project(p.Geometry, fr.Transform)}
		for _, rings := range s.polys {
			br.fillPolygon(rings, lipgloss.Color(p.Colors.Fill))
		}
		shapes = append(shapes, s)
	}
	for _, s := range shapes {
		for _, rings := range s.polys {
			br.strokeRings(rings, br.clearPixel)
		}
	}
	if m.hovering && m.hoverID != "" {
		for _, s := range shapes {
			if s.id != m.hoverID {
				continue
			}
			for _, rings := range s.polys {
				br.strokeRings(rings, func(x, y int) { br.setPixel(x, y, hoverCol) })
			}
		}
	}
	return strings.Join(br.toLines(), "\n")
}

// project maps every ring into micro-pixel space, one ring list per polygon.
func project(g geom.Geometry, fit geom.Fit) [][]orb.Ring {
	mapRings := func(rings []orb.Ring) []orb.Ring {
		out := make([]orb.Ring, 0, len(rings))
		for _, r := range rings {
			if len(r) < 3 {
				continue
			}
			pr := make(orb.Ring, len(r))
			for i, p := range r {
				pr[i] = fit.Apply(p)
			}
			out = append(out, pr)
		}
		return out
	}
	switch g := g.(type) {
	case geom.Polygon:
		return [][]orb.Ring{mapRings(g.Rings)}
	case geom.MultiPolygon:
		out := make([][]orb.Ring, 0, len(g.Polygons))
		for _, poly := range g.Polygons {
			out = append(out, mapRings(poly))
		}
		return out
	}
	return nil
}

// cellPoint is the center of a map cell in micro-pixel space.
func cellPoint(cx, cy int) orb.Point {
	return orb.Point{float64(cx*2) + 1, float64(cy*4) + 2}
}
