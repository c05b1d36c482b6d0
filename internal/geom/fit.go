package geom

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// PaddingMode selects how Padding.Amount is applied when fitting.
type PaddingMode int

const (
	// GeometrySpacePercent grows the bbox by Amount of its own width/height on
	// each side before fitting.
	GeometrySpacePercent PaddingMode = iota
	// ScaleSpaceMargin shrinks the fitted scale by 2*Amount and centers the
	// unpadded bbox.
	ScaleSpaceMargin
)

func (m PaddingMode) String() string {
	switch m {
	case GeometrySpacePercent:
		return "geometry-percent"
	case ScaleSpaceMargin:
		return "scale-margin"
	}
	return fmt.Sprintf("PaddingMode(%d)", int(m))
}

type Padding struct {
	Mode   PaddingMode
	Amount float64
}

type Viewport struct {
	Width  float64
	Height float64
}

// Fit maps planar geometry into a viewport with the Y axis flipped:
// (x, y) -> (x*Scale + TranslateX, -y*Scale + TranslateY).
type Fit struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
}

func (f Fit) Apply(p orb.Point) orb.Point {
	return orb.Point{p[0]*f.Scale + f.TranslateX, -p[1]*f.Scale + f.TranslateY}
}

// Invert maps a viewport point back into geometry space.
func (f Fit) Invert(p orb.Point) orb.Point {
	return orb.Point{(p[0] - f.TranslateX) / f.Scale, (f.TranslateY - p[1]) / f.Scale}
}

// Unfitted is the default transform used when there is nothing to fit: unit
// scale with geometry Y=0 on the bottom edge of the viewport.
func Unfitted(vp Viewport) Fit {
	return Fit{Scale: 1, TranslateY: vp.Height}
}

// FitBounds derives the scale and translation that center bbox in vp.
func FitBounds(bbox BBox, vp Viewport, pad Padding) Fit {
	margin := 1.0
	switch pad.Mode {
	case GeometrySpacePercent:
		bbox = bbox.Expand(pad.Amount)
	case ScaleSpaceMargin:
		margin = 1 - 2*pad.Amount
	}
	w, h := bbox.Width(), bbox.Height()
	s, ok := fitScale(w, h, vp)
	if ok {
		s *= margin
	}
	if !(s > 0) || math.IsInf(s, 0) {
		s = 1
	}
	return Fit{
		Scale:      s,
		TranslateX: (vp.Width-w*s)/2 - bbox.MinX*s,
		TranslateY: (vp.Height+h*s)/2 + bbox.MinY*s,
	}
}

// fitScale is min(vw/w, vh/h), ignoring any axis that cannot produce a
// finite positive ratio. (1, false) when neither can.
func fitScale(w, h float64, vp Viewport) (float64, bool) {
	rx, okx := ratio(vp.Width, w)
	ry, oky := ratio(vp.Height, h)
	switch {
	case okx && oky:
		return math.Min(rx, ry), true
	case okx:
		return rx, true
	case oky:
		return ry, true
	}
	return 1, false
}

func ratio(view, extent float64) (float64, bool) {
	if extent <= 0 || view <= 0 {
		return 0, false
	}
	return view / extent, true
}
