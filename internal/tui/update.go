package tui

import (
	"fmt"
	"math"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"civicmap/internal/refdata"
)

const (
	// zoomStep is the pinch factor of one key press or wheel notch.
	zoomStep = 1.25
	// panStep is the keyboard pan distance in micro pixels.
	panStep = 16.0
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			_, _, ch := m.layout()
			m.l.SetSize(sidebarWidth-2, ch-2)
		}
	case tea.KeyMsg:
		// while the picker is filtering every key belongs to it
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "+", "=":
			m.zoom(zoomStep)
		case "-", "_":
			m.zoom(1 / zoomStep)
		case "0":
			m.view.Gesture().Reset()
			m.status = "view reset"
		case "up":
			m.pan(0, -panStep)
		case "down":
			m.pan(0, panStep)
		case "left":
			m.pan(-panStep, 0)
		case "right":
			m.pan(panStep, 0)
		case "esc":
			switch {
			case m.infoPopup != "":
				m.infoPopup = ""
			case m.showAttrs:
				m.showAttrs = false
			case m.level == levelState:
				m.showCountry()
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				_, _, ch := m.layout()
				m.l.SetSize(sidebarWidth-2, ch-2)
			}
			return m, nil
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrs()
			}
		case "i":
			if m.infoPopup != "" {
				m.infoPopup = ""
			} else {
				m.infoPopup = m.info()
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(stateItem); ok {
					m.showState(it.st.Code)
				}
				return m, nil
			}
		}
	case tea.MouseMsg:
		m.mouse(msg)
		return m, nil
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) zoom(factor float64) {
	g := m.view.Gesture()
	g.PinchUpdate(factor)
	g.PinchEnd()
	m.status = fmt.Sprintf("zoom: %.2fx", g.Committed().Scale)
}

func (m *Model) pan(dx, dy float64) {
	g := m.view.Gesture()
	// a key press always clears the tap threshold
	if d, minD := math.Hypot(dx, dy), g.Config().MinPanDistance; d < minD {
		dx, dy = dx*minD/d, dy*minD/d
	}
	g.PanUpdate(dx, dy)
	g.PanEnd()
	t := g.Committed()
	if t.Scale <= 1 {
		m.status = "zoom in to pan"
		return
	}
	m.status = fmt.Sprintf("pan: %.0f,%.0f", t.X, t.Y)
}

// mouse handles wheel zoom, drag panning, taps and hover on the map canvas.
func (m *Model) mouse(msg tea.MouseMsg) {
	area, _, _ := m.layout()
	cx, cy := msg.X-area.x, msg.Y-area.y
	inside := area.contains(msg.X, msg.Y)
	g := m.view.Gesture()

	switch {
	case msg.Button == tea.MouseButtonWheelUp && inside:
		m.zoom(zoomStep)
	case msg.Button == tea.MouseButtonWheelDown && inside:
		m.zoom(1 / zoomStep)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && inside:
		m.dragging = true
		m.dragX, m.dragY = cx, cy
	case msg.Action == tea.MouseActionMotion && m.dragging:
		if g.PanUpdate(float64((cx-m.dragX)*2), float64((cy-m.dragY)*4)) {
			m.hovering = false
		}
	case msg.Action == tea.MouseActionRelease && m.dragging:
		m.dragging = false
		if g.Active() {
			g.PanEnd()
			t := g.Committed()
			m.status = fmt.Sprintf("pan: %.0f,%.0f", t.X, t.Y)
			return
		}
		g.PanEnd()
		if inside {
			m.tap(cx, cy)
		}
	case msg.Action == tea.MouseActionMotion:
		m.hover(cx, cy, inside)
	}
}

// tap selects the region under a cell. On the country map that opens the
// state; on a state map it reports the district.
func (m *Model) tap(cx, cy int) {
	id, ok := m.view.Select(m.viewport(), cellPoint(cx, cy))
	if !ok {
		m.status = "nothing here"
		return
	}
	if m.level == levelCountry {
		if st, ok := refdata.ByFIPS(id); ok {
			m.log.Info("state selected", "state", st.Name)
			m.showState(st.Code)
			return
		}
		m.status = "unknown region: " + id
		return
	}
	for _, f := range m.view.Features() {
		if f.ID == id {
			m.status = "selected: " + m.view.Name(f)
			break
		}
	}
}

func (m *Model) hover(cx, cy int, inside bool) {
	m.hovering, m.hoverID, m.hoverName = false, "", ""
	if !inside {
		return
	}
	f, ok := m.view.HitTest(m.viewport(), cellPoint(cx, cy))
	if !ok {
		return
	}
	m.hovering, m.hoverID, m.hoverName = true, f.ID, m.view.Name(f)
}

// info summarizes the current view for the popup.
func (m Model) info() string {
	lines := []string{"view: " + m.title()}
	if m.level == levelState {
		lines = append(lines,
			"code: "+strings.ToUpper(m.state.Code),
			"fips: "+m.state.FIPS,
			"category: "+string(m.state.Category),
			"districts: "+districtSummary(m.state.Code),
		)
	}
	lines = append(lines, fmt.Sprintf("regions: %d", len(m.view.Features())))
	if fr, err := m.view.Frame(m.viewport()); err == nil {
		lines = append(lines,
			fmt.Sprintf("bbox: [%.1f, %.1f, %.1f, %.1f]", fr.BBox.MinX, fr.BBox.MinY, fr.BBox.MaxX, fr.BBox.MaxY),
			fmt.Sprintf("center: %.1f, %.1f", fr.BBox.Center()[0], fr.BBox.Center()[1]),
			fmt.Sprintf("scale: %.4g  zoom: %.2fx", fr.Transform.Scale, fr.Gesture.Scale),
		)
	} else {
		lines = append(lines, "no map data")
	}
	return strings.Join(lines, "\n")
}

// districtSummary describes a state's seats: "at-large", "none", or the
// numbered range.
func districtSummary(code string) string {
	ds := refdata.DistrictsForState(code)
	switch {
	case len(ds) == 0:
		return "none"
	case refdata.IsAtLarge(code):
		return "at-large"
	}
	return fmt.Sprintf("%d (%d-%d)", len(ds), ds[0], ds[len(ds)-1])
}
