package mapview

import (
	"fmt"
	"strings"

	log "github.com/inconshreveable/log15"

	"civicmap/internal/geom"
	"civicmap/internal/gesture"
	"civicmap/internal/refdata"
)

// Settings carries the per-screen constants that differ between the country,
// state and district views.
type Settings struct {
	// StatePadding is the geometry-space padding of the single state view.
	StatePadding float64
	// DistrictMargin is the scale-space margin of the district view.
	DistrictMargin float64
	// DistrictKey is the property holding a district's state FIPS code.
	DistrictKey string
	Gesture     gesture.Config
	Logger      log.Logger
}

func DefaultSettings() Settings {
	return Settings{
		StatePadding:   0.10,
		DistrictMargin: 0.025,
		DistrictKey:    "STATEFP",
		Gesture:        gesture.DefaultConfig(),
	}
}

// DistrictColors is the neutral styling used until districts carry party data.
var DistrictColors = refdata.Colors{Fill: "#E5E7EB", Stroke: "#6B7280", Text: "#6B7280"}

// Country shows every state, fitted edge to edge.
func Country(states []geom.Feature, s Settings, onSelect func(string)) *View {
	return New(states, Options{
		Padding:  geom.Padding{Mode: geom.GeometrySpacePercent},
		Gesture:  s.Gesture,
		OnSelect: onSelect,
		Logger:   s.Logger,
	})
}

// State zooms the states layer to one state.
func State(states []geom.Feature, code string, s Settings) (*View, error) {
	st, ok := refdata.ByCode(code)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownState, code)
	}
	return New(states, Options{
		Region:  st.FIPS,
		Key:     geom.ByID,
		Padding: geom.Padding{Mode: geom.GeometrySpacePercent, Amount: s.StatePadding},
		Gesture: s.Gesture,
		Logger:  s.Logger,
	}), nil
}

// Districts shows the congressional districts of one state.
func Districts(districts []geom.Feature, code string, s Settings, onSelect func(string)) (*View, error) {
	st, ok := refdata.ByCode(code)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownState, code)
	}
	key := s.DistrictKey
	if key == "" {
		key = "STATEFP"
	}
	v := New(withIDs(districts), Options{
		Region:   st.FIPS,
		Key:      geom.ByProperty(key),
		Padding:  geom.Padding{Mode: geom.ScaleSpaceMargin, Amount: s.DistrictMargin},
		Gesture:  s.Gesture,
		Colors:   func(geom.Feature) refdata.Colors { return DistrictColors },
		Name:     districtName,
		OnSelect: onSelect,
		Logger:   s.Logger,
	})
	if !v.Empty() {
		v.log.Info("rendering districts", "state", st.Name, "count", len(v.Features()))
	}
	return v, nil
}

// StateDetail prefers a state's congressional districts and falls back to
// its outline from the states layer when the district layer has none.
func StateDetail(states, districts []geom.Feature, code string, s Settings, onSelect func(string)) (*View, error) {
	v, err := Districts(districts, code, s, onSelect)
	if err != nil || !v.Empty() {
		return v, err
	}
	v.log.Info("no districts for state", "state", strings.ToUpper(code))
	return State(states, code, s)
}

// withIDs fills missing feature ids from GEOID, or the feature's position.
func withIDs(fs []geom.Feature) []geom.Feature {
	out := make([]geom.Feature, len(fs))
	for i, f := range fs {
		if f.ID == "" {
			f.ID = f.Properties["GEOID"]
		}
		if f.ID == "" {
			f.ID = fmt.Sprintf("district-%d", i)
		}
		out[i] = f
	}
	return out
}

func districtName(f geom.Feature) string {
	if n := f.Properties["NAMELSAD"]; n != "" {
		return n
	}
	return "Unknown District"
}
