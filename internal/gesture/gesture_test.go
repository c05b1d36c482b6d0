package gesture

import "testing"

func TestPinchClamp(t *testing.T) {
	s := New(DefaultConfig())
	for i := 0; i < 5; i++ {
		s.PinchUpdate(10)
		if got := s.Current().Scale; got != 5 {
			t.Fatalf("update %d: live scale = %v, want 5", i, got)
		}
	}
	s.PinchEnd()
	if got := s.Committed().Scale; got != 5 {
		t.Errorf("committed scale = %v, want 5", got)
	}
	s.PinchUpdate(10)
	s.PinchEnd()
	if got := s.Committed().Scale; got != 5 {
		t.Errorf("committed scale after second pinch = %v, want 5", got)
	}
}

func TestPinchLowerClamp(t *testing.T) {
	s := New(DefaultConfig())
	s.PinchUpdate(0.1)
	if got := s.Current().Scale; got != 1 {
		t.Errorf("live scale = %v, want 1", got)
	}
}

func TestPinchIsRelativeToCommitted(t *testing.T) {
	s := New(DefaultConfig())
	s.PinchUpdate(2)
	s.PinchUpdate(1.5) // cumulative factor, not compounded
	if got := s.Current().Scale; got != 1.5 {
		t.Errorf("live scale = %v, want 1.5", got)
	}
	s.PinchEnd()
	s.PinchUpdate(2)
	if got := s.Current().Scale; got != 3 {
		t.Errorf("live scale = %v, want 3", got)
	}
	if got := s.Committed().Scale; got != 1.5 {
		t.Errorf("committed scale mid-gesture = %v, want 1.5", got)
	}
}

func TestPanClampAtMinimumZoom(t *testing.T) {
	s := New(DefaultConfig())
	for _, d := range [][2]float64{{50, 0}, {-300, 1000}, {12, -12}} {
		s.PanUpdate(d[0], d[1])
		if cur := s.Current(); cur.X != 0 || cur.Y != 0 {
			t.Errorf("pan %v at scale 1 gave %v,%v", d, cur.X, cur.Y)
		}
	}
	s.PanEnd()
	if c := s.Committed(); c.X != 0 || c.Y != 0 {
		t.Errorf("committed = %+v", c)
	}
}

func TestPanClampGrowsWithZoom(t *testing.T) {
	s := New(Config{MinScale: 1, MaxScale: 5, PanFactor: 100, MinPanDistance: 10})
	s.PinchUpdate(3)
	s.PinchEnd()
	s.PanUpdate(500, -50)
	cur := s.Current()
	if cur.X != 200 || cur.Y != -50 {
		t.Errorf("live = %v,%v, want 200,-50", cur.X, cur.Y)
	}
	s.PanEnd()
	s.PanUpdate(0, -500)
	cur = s.Current()
	if cur.X != 200 || cur.Y != -200 {
		t.Errorf("live = %v,%v, want 200,-200", cur.X, cur.Y)
	}
}

func TestPanThreshold(t *testing.T) {
	s := New(DefaultConfig())
	s.PinchUpdate(2)
	s.PinchEnd()
	if s.PanUpdate(3, 4) {
		t.Error("5px drag should not activate a pan")
	}
	if s.Active() {
		t.Error("state should be idle after a tap-sized drag")
	}
	if !s.PanUpdate(6, 8) {
		t.Error("10px drag should activate a pan")
	}
	// once active, small deltas are applied
	if !s.PanUpdate(1, 1) {
		t.Error("active pan should accept small deltas")
	}
	if cur := s.Current(); cur.X != 1 || cur.Y != 1 {
		t.Errorf("live = %v,%v", cur.X, cur.Y)
	}
	s.PanEnd()
	if c := s.Committed(); c.X != 1 || c.Y != 1 {
		t.Errorf("committed = %+v", c)
	}
	s.PanUpdate(2, 2)
	s.PanEnd()
	if c := s.Committed(); c.X != 1 || c.Y != 1 {
		t.Errorf("sub-threshold pan changed committed state: %+v", c)
	}
}

func TestSimultaneousPinchAndPan(t *testing.T) {
	s := New(DefaultConfig())
	s.PinchUpdate(2)
	s.PinchEnd()
	s.PinchUpdate(1.5)
	s.PanUpdate(40, 20)
	cur := s.Current()
	if cur.Scale != 3 || cur.X != 40 || cur.Y != 20 {
		t.Errorf("current = %+v", cur)
	}
	s.PanEnd()
	if c := s.Committed(); c.Scale != 2 || c.X != 40 {
		t.Errorf("committed after pan end = %+v", c)
	}
	if s.Current().Scale != 3 {
		t.Error("pinch should still be live")
	}
	s.PinchEnd()
	if c := s.Committed(); c != (Transform{Scale: 3, X: 40, Y: 20}) {
		t.Errorf("committed = %+v", c)
	}
	if s.Active() {
		t.Error("expected idle")
	}
}

func TestEndWithoutUpdate(t *testing.T) {
	s := New(DefaultConfig())
	s.PinchEnd()
	s.PanEnd()
	if s.Committed() != Identity || s.Current() != Identity {
		t.Errorf("committed=%+v current=%+v", s.Committed(), s.Current())
	}
}

func TestReset(t *testing.T) {
	s := New(DefaultConfig())
	s.PinchUpdate(4)
	s.PinchEnd()
	s.PanUpdate(100, 100)
	s.Reset()
	if s.Active() || s.Current() != Identity || s.Committed() != Identity {
		t.Errorf("after reset: %+v", s.Current())
	}
}

func TestZoomOutPullsPanInside(t *testing.T) {
	tests := []struct {
		name   string
		factor float64
		want   Transform
	}{
		{"back to rest", 0.2, Transform{Scale: 1}},
		{"halfway", 0.5, Transform{Scale: 2.5, X: 225, Y: -225}},
		{"zoom in keeps offset", 1, Transform{Scale: 5, X: 600, Y: -600}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(DefaultConfig())
			s.PinchUpdate(5)
			s.PinchEnd()
			s.PanUpdate(600, -600)
			s.PanEnd()
			s.PinchUpdate(tt.factor)
			s.PinchEnd()
			if c := s.Committed(); c != tt.want {
				t.Errorf("committed = %+v, want %+v", c, tt.want)
			}
			if cur := s.Current(); cur != tt.want {
				t.Errorf("current = %+v, want %+v", cur, tt.want)
			}
		})
	}
}

func TestZoomOutDuringPan(t *testing.T) {
	s := New(DefaultConfig())
	s.PinchUpdate(3)
	s.PinchEnd()
	s.PanUpdate(250, 0)
	s.PinchUpdate(0.5)
	s.PinchEnd()
	// limit is now (1.5-1)*150
	if cur := s.Current(); cur.X != 75 {
		t.Errorf("live x = %v, want 75", cur.X)
	}
	s.PanEnd()
	if c := s.Committed(); c != (Transform{Scale: 1.5, X: 75}) {
		t.Errorf("committed = %+v", c)
	}
}
