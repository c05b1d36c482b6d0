// Package mapview composes the geometry engine into renderable frames: it
// filters a layer to a region, fits it into a viewport, generates paths, and
// layers the view's own gesture transform on top.
package mapview

import (
	"errors"

	log "github.com/inconshreveable/log15"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"civicmap/internal/geom"
	"civicmap/internal/gesture"
	"civicmap/internal/refdata"
)

var ErrUnknownState = errors.New("mapview: unknown state")

type Options struct {
	// Region restricts the layer to features whose Key equals it. Empty
	// shows the whole layer.
	Region  string
	Key     geom.JoinKey
	Padding geom.Padding
	Gesture gesture.Config

	// Colors and Name resolve display metadata; both default to the state
	// reference table keyed by feature id.
	Colors func(geom.Feature) refdata.Colors
	Name   func(geom.Feature) string

	// OnSelect receives the region id picked by Select.
	OnSelect func(id string)

	Logger log.Logger
}

// Path is one feature ready to draw, in native coordinates. Geometry is kept
// alongside D for raster renderers.
type Path struct {
	ID       string
	Name     string
	D        string
	Colors   refdata.Colors
	Geometry geom.Geometry
}

// Frame is everything a renderer needs for one draw.
type Frame struct {
	Viewport geom.Viewport
	BBox     geom.BBox
	// Fit maps geometry into the viewport; Transform is Fit with the
	// current gesture applied and is what the path group should use.
	Fit       geom.Fit
	Transform geom.Fit
	Gesture   gesture.Transform
	Paths     []Path
}

type View struct {
	opts     Options
	features []geom.Feature
	bounds   []geom.BBox
	paths    []Path
	bbox     geom.BBox
	hasData  bool
	gesture  *gesture.State
	log      log.Logger
}

func New(features []geom.Feature, opts Options) *View {
	if opts.Key == nil {
		opts.Key = geom.ByID
	}
	if opts.Colors == nil {
		opts.Colors = func(f geom.Feature) refdata.Colors { return refdata.ColorsForFIPS(f.ID) }
	}
	if opts.Name == nil {
		opts.Name = stateName
	}
	if opts.Gesture == (gesture.Config{}) {
		opts.Gesture = gesture.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = log.New()
		opts.Logger.SetHandler(log.DiscardHandler())
	}
	v := &View{opts: opts, gesture: gesture.New(opts.Gesture), log: opts.Logger}
	if opts.Region != "" {
		features = geom.FilterByRegion(features, opts.Region, opts.Key)
		if len(features) == 0 {
			v.log.Warn("no features for region", "region", opts.Region)
		}
	}
	v.features = features
	v.bounds = make([]geom.BBox, len(features))
	v.paths = make([]Path, len(features))
	for i, f := range features {
		if bb, ok := geom.GeometryBounds(f.Geometry); ok {
			v.bounds[i] = bb
		} else {
			v.log.Debug("feature has no geometry", "id", f.ID)
		}
		v.paths[i] = Path{
			ID:       f.ID,
			Name:     opts.Name(f),
			D:        geom.Path(f.Geometry),
			Colors:   opts.Colors(f),
			Geometry: f.Geometry,
		}
	}
	bbox, err := geom.Bounds(features)
	v.bbox, v.hasData = bbox, err == nil
	return v
}

func stateName(f geom.Feature) string {
	if s, ok := refdata.ByFIPS(f.ID); ok {
		return s.DisplayName
	}
	if n := f.Properties["name"]; n != "" {
		return n
	}
	return f.ID
}

// Empty reports whether the view has nothing to draw.
func (v *View) Empty() bool { return !v.hasData }

func (v *View) Features() []geom.Feature { return v.features }

func (v *View) Region() string { return v.opts.Region }

// Name is the display name of a feature in this view.
func (v *View) Name(f geom.Feature) string { return v.opts.Name(f) }

// Gesture exposes the view's gesture state for input handlers.
func (v *View) Gesture() *gesture.State { return v.gesture }

// Fit is the viewport fit, or geom.Unfitted when the view is empty.
func (v *View) Fit(vp geom.Viewport) geom.Fit {
	if !v.hasData {
		return geom.Unfitted(vp)
	}
	return geom.FitBounds(v.bbox, vp, v.opts.Padding)
}

// Transform composes the fit with the current gesture. The gesture scales
// about the viewport center and then translates in screen space.
func (v *View) Transform(vp geom.Viewport) geom.Fit {
	return Compose(v.Fit(vp), v.gesture.Current(), vp)
}

// Compose applies a gesture transform on top of a fit.
func Compose(fit geom.Fit, g gesture.Transform, vp geom.Viewport) geom.Fit {
	cx, cy := vp.Width/2, vp.Height/2
	return geom.Fit{
		Scale:      fit.Scale * g.Scale,
		TranslateX: cx + g.Scale*(fit.TranslateX-cx) + g.X,
		TranslateY: cy + g.Scale*(fit.TranslateY-cy) + g.Y,
	}
}

// Frame builds the drawable frame. It returns geom.ErrNoData when the region
// has no geometry; callers show a placeholder instead.
func (v *View) Frame(vp geom.Viewport) (Frame, error) {
	if !v.hasData {
		return Frame{Viewport: vp, Fit: geom.Unfitted(vp), Transform: geom.Unfitted(vp)}, geom.ErrNoData
	}
	fr := Frame{
		Viewport:  vp,
		BBox:      v.bbox,
		Fit:       v.Fit(vp),
		Transform: v.Transform(vp),
		Gesture:   v.gesture.Current(),
		Paths:     make([]Path, 0, len(v.paths)),
	}
	for _, p := range v.paths {
		if p.D == "" {
			continue
		}
		fr.Paths = append(fr.Paths, p)
	}
	v.log.Debug("frame", "region", v.opts.Region, "paths", len(fr.Paths), "scale", fr.Transform.Scale)
	return fr, nil
}

// HitTest finds the topmost feature under a viewport point.
func (v *View) HitTest(vp geom.Viewport, pt orb.Point) (geom.Feature, bool) {
	if !v.hasData {
		return geom.Feature{}, false
	}
	p := v.Transform(vp).Invert(pt)
	for i := len(v.features) - 1; i >= 0; i-- {
		f := v.features[i]
		if f.Geometry == nil || !v.bounds[i].Bound().Contains(p) {
			continue
		}
		if contains(f.Geometry, p) {
			return f, true
		}
	}
	return geom.Feature{}, false
}

func contains(g geom.Geometry, p orb.Point) bool {
	switch g := geom.Orb(g).(type) {
	case orb.Polygon:
		return planar.PolygonContains(g, p)
	case orb.MultiPolygon:
		return planar.MultiPolygonContains(g, p)
	}
	return false
}

// Select hit-tests a point and hands the region id to OnSelect. Routing is
// left to the callback.
func (v *View) Select(vp geom.Viewport, pt orb.Point) (string, bool) {
	f, ok := v.HitTest(vp, pt)
	if !ok {
		return "", false
	}
	v.log.Info("region selected", "id", f.ID)
	if v.opts.OnSelect != nil {
		v.opts.OnSelect(f.ID)
	}
	return f.ID, true
}
