// Package gesture tracks pinch-zoom and pan-drag for one map view.
//
// A gesture session moves the live transform away from the committed one;
// ending the gesture promotes live to committed. Pinch and pan are tracked
// independently so they can run at the same time.
package gesture

import "math"

// Config holds the clamp constants.
type Config struct {
	MinScale float64
	MaxScale float64
	// PanFactor is K in the pan clamp ±(committedScale-1)*K.
	PanFactor float64
	// MinPanDistance is how far a drag must travel before it counts as a pan.
	MinPanDistance float64
}

func DefaultConfig() Config {
	return Config{MinScale: 1, MaxScale: 5, PanFactor: 150, MinPanDistance: 10}
}

// Transform is a zoom plus a screen-space offset.
type Transform struct {
	Scale float64
	X     float64
	Y     float64
}

// Identity is the rest transform.
var Identity = Transform{Scale: 1}

type State struct {
	cfg Config

	committed Transform
	live      Transform

	pinching bool
	panning  bool
}

func New(cfg Config) *State {
	if cfg.MaxScale < cfg.MinScale {
		cfg.MaxScale = cfg.MinScale
	}
	s := &State{cfg: cfg}
	s.Reset()
	return s
}

// Reset returns to the rest transform and abandons any gesture in flight.
func (s *State) Reset() {
	s.committed = Transform{Scale: clamp(1, s.cfg.MinScale, s.cfg.MaxScale)}
	s.live = s.committed
	s.pinching, s.panning = false, false
}

func (s *State) Config() Config { return s.cfg }

// Active reports whether a pinch or an activated pan is in progress.
func (s *State) Active() bool { return s.pinching || s.panning }

func (s *State) Committed() Transform { return s.committed }

// Current is the transform a renderer should use right now: live values
// during a gesture, committed values otherwise.
func (s *State) Current() Transform {
	t := s.committed
	if s.pinching {
		t.Scale = s.live.Scale
	}
	if s.panning {
		t.X, t.Y = s.live.X, s.live.Y
	}
	return t
}

// PinchUpdate applies a cumulative pinch factor relative to the committed
// scale. Updates without a preceding start are fine.
func (s *State) PinchUpdate(factor float64) {
	s.pinching = true
	s.live.Scale = clamp(s.committed.Scale*factor, s.cfg.MinScale, s.cfg.MaxScale)
}

// PinchEnd commits the live scale. A zoom-out narrows the pan limit, so the
// committed offset is pulled back inside it.
func (s *State) PinchEnd() {
	if s.pinching {
		s.committed.Scale = s.live.Scale
	}
	s.pinching = false
	s.live.Scale = s.committed.Scale
	limit := s.panLimit()
	s.committed.X = clamp(s.committed.X, -limit, limit)
	s.committed.Y = clamp(s.committed.Y, -limit, limit)
	if s.panning {
		s.live.X = clamp(s.live.X, -limit, limit)
		s.live.Y = clamp(s.live.Y, -limit, limit)
	} else {
		s.live.X, s.live.Y = s.committed.X, s.committed.Y
	}
}

// panLimit is ±(committedScale-1)*K, never negative.
func (s *State) panLimit() float64 {
	return math.Max(0, (s.committed.Scale-1)*s.cfg.PanFactor)
}

// PanUpdate applies a cumulative drag delta relative to the committed offset.
// Until the drag has travelled MinPanDistance it is treated as a tap and
// ignored; PanUpdate reports whether the pan is active.
func (s *State) PanUpdate(dx, dy float64) bool {
	if !s.panning && math.Hypot(dx, dy) < s.cfg.MinPanDistance {
		return false
	}
	s.panning = true
	limit := s.panLimit()
	s.live.X = clamp(s.committed.X+dx, -limit, limit)
	s.live.Y = clamp(s.committed.Y+dy, -limit, limit)
	return true
}

func (s *State) PanEnd() {
	if s.panning {
		s.committed.X, s.committed.Y = s.live.X, s.live.Y
	}
	s.panning = false
	s.live.X, s.live.Y = s.committed.X, s.committed.Y
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
