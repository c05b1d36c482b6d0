package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/inconshreveable/log15"

	"civicmap/internal/geom"
	"civicmap/internal/mapview"
	"civicmap/internal/refdata"
)

type level int

const (
	levelCountry level = iota
	levelState
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string

	// Layers
	states    []geom.Feature
	districts []geom.Feature
	settings  mapview.Settings
	log       log.Logger

	// Navigation
	level level
	state refdata.State
	view  *mapview.View

	// State picker
	l list.Model

	// info popup
	infoPopup string

	// mouse drag, in cells
	dragging bool
	dragX    int
	dragY    int

	// hover state
	hovering  bool
	hoverID   string
	hoverName string

	// attributes table
	showAttrs bool
	tbl       table.Model
}

// New starts at the country view. districts may be empty; state views then
// fall back to the state outline.
func New(states, districts []geom.Feature, settings mapview.Settings) Model {
	if settings.Logger == nil {
		settings.Logger = log.New()
		settings.Logger.SetHandler(log.DiscardHandler())
	}
	m := Model{
		helpVisible: true,
		states:      states,
		districts:   districts,
		settings:    settings,
		log:         settings.Logger,
	}
	d := list.NewDefaultDelegate()
	m.l = list.New(stateItems(), d, 0, 0)
	m.l.Title = "States"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.showCountry()
	return m
}

// NewWithState opens directly on a state's map.
func NewWithState(states, districts []geom.Feature, settings mapview.Settings, code string) Model {
	m := New(states, districts, settings)
	m.showState(code)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m *Model) showCountry() {
	m.level = levelCountry
	m.state = refdata.State{}
	m.view = mapview.Country(m.states, m.settings, nil)
	m.afterNavigate()
	m.status = fmt.Sprintf("United States  %d states", len(m.view.Features()))
}

// showState zooms to a state, preferring its congressional districts.
func (m *Model) showState(code string) {
	st, ok := refdata.ByCode(code)
	if !ok {
		m.status = "unknown state: " + code
		return
	}
	v, err := mapview.StateDetail(m.states, m.districts, st.Code, m.settings, nil)
	if err != nil {
		m.status = "error: " + err.Error()
		return
	}
	m.level = levelState
	m.state = st
	m.view = v
	m.afterNavigate()
	switch n := refdata.DistrictCount(st.Code); {
	case v.Empty():
		m.status = st.DisplayName + "  no map data"
	case n == 1:
		m.status = st.DisplayName + "  at-large district"
	case n > 1:
		m.status = fmt.Sprintf("%s  %d districts", st.DisplayName, n)
	default:
		m.status = st.DisplayName
	}
}

func (m *Model) afterNavigate() {
	m.hovering, m.hoverID, m.hoverName = false, "", ""
	m.dragging = false
	m.infoPopup = ""
	if m.showAttrs {
		m.refreshAttrs()
	}
}

// viewport is the map canvas in braille micro pixels.
func (m Model) viewport() geom.Viewport {
	area, _, _ := m.layout()
	return geom.Viewport{Width: float64(area.w * 2), Height: float64(area.h * 4)}
}

func (m Model) title() string {
	if m.level == levelState {
		return m.state.DisplayName
	}
	return "United States"
}
