// Package svgout writes map frames as standalone SVG documents.
package svgout

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"civicmap/internal/geom"
	"civicmap/internal/mapview"
)

const (
	background  = "fill:#ffffff"
	placeholder = "text-anchor:middle;font-family:sans-serif;font-size:14px;fill:#6b7280"
)

// Options controls the document chrome around the map group.
type Options struct {
	Title string
	// StrokeWidth is in screen pixels; strokes do not scale with zoom.
	StrokeWidth float64
	// Empty is the placeholder text drawn when the view has no geometry.
	Empty string
}

func DefaultOptions() Options {
	return Options{StrokeWidth: 1, Empty: "No map data"}
}

// Write renders the view at vp. An empty view produces a placeholder
// document, not an error.
func Write(w io.Writer, v *mapview.View, vp geom.Viewport, opts Options) error {
	fr, err := v.Frame(vp)
	switch {
	case errors.Is(err, geom.ErrNoData):
		WritePlaceholder(w, vp, opts)
		return nil
	case err != nil:
		return err
	}
	WriteFrame(w, fr, opts)
	return nil
}

// WriteFrame draws every path of fr inside a single group carrying the
// frame's transform. Paths keep native coordinates.
func WriteFrame(w io.Writer, fr mapview.Frame, opts Options) {
	width, height := size(fr.Viewport)
	canvas := svg.New(w)
	canvas.Start(width, height)
	if opts.Title != "" {
		canvas.Title(opts.Title)
	}
	canvas.Rect(0, 0, width, height, background)
	canvas.Gtransform(Matrix(fr.Transform))
	sw := "stroke-width=\"" + num(opts.StrokeWidth) + "\""
	for _, p := range fr.Paths {
		canvas.Path(p.D,
			fmt.Sprintf("id=%q", "region-"+p.ID),
			fmt.Sprintf("fill=%q", p.Colors.Fill),
			fmt.Sprintf("stroke=%q", p.Colors.Stroke),
			sw,
			`vector-effect="non-scaling-stroke"`,
		)
	}
	canvas.Gend()
	canvas.End()
}

func WritePlaceholder(w io.Writer, vp geom.Viewport, opts Options) {
	width, height := size(vp)
	canvas := svg.New(w)
	canvas.Start(width, height)
	if opts.Title != "" {
		canvas.Title(opts.Title)
	}
	canvas.Rect(0, 0, width, height, background)
	canvas.Text(width/2, height/2, opts.Empty, placeholder)
	canvas.End()
}

// Matrix formats a fit as an SVG matrix transform. The negative d term
// flips geometry Y-up into screen Y-down.
func Matrix(f geom.Fit) string {
	return "matrix(" + num(f.Scale) + " 0 0 " + num(-f.Scale) + " " + num(f.TranslateX) + " " + num(f.TranslateY) + ")"
}

func size(vp geom.Viewport) (int, int) {
	return int(math.Round(vp.Width)), int(math.Round(vp.Height))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
