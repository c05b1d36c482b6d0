package geom

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func init() {
	geojson.CustomJSONMarshaler = json
	geojson.CustomJSONUnmarshaler = json
}

// LoadGeoJSON reads a GeoJSON FeatureCollection. Polygon and MultiPolygon
// features keep their geometry; anything else is kept with a nil Geometry so
// it still shows up in attribute listings. flipY normalizes Y-down data.
func LoadGeoJSON(r io.Reader, flipY bool) ([]Feature, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}
	if len(fc.Features) == 0 {
		return nil, errors.New("geojson: no features found")
	}
	out := make([]Feature, 0, len(fc.Features))
	for _, f := range fc.Features {
		var g Geometry
		switch og := f.Geometry.(type) {
		case orb.Polygon:
			g = Polygon{Rings: og}
		case orb.MultiPolygon:
			g = MultiPolygon{Polygons: og}
		}
		if flipY && g != nil {
			g = FlipY(g)
		}
		out = append(out, Feature{
			ID:         IDString(f.ID),
			Geometry:   g,
			Properties: StringProperties(f.Properties),
		})
	}
	return out, nil
}

// IDString renders a decoded JSON identifier (string or number) as a string.
func IDString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case jsoniter.Number:
		return t.String()
	}
	return fmt.Sprintf("%v", v)
}

// StringProperties flattens decoded JSON properties to strings. Nested values
// are re-encoded as JSON.
func StringProperties(props map[string]any) map[string]string {
	out := make(map[string]string, len(props))
	for k, v := range props {
		switch t := v.(type) {
		case nil:
			out[k] = ""
		case string:
			out[k] = t
		case float64:
			out[k] = strconv.FormatFloat(t, 'g', -1, 64)
		case bool:
			out[k] = strconv.FormatBool(t)
		default:
			bs, _ := json.Marshal(t)
			out[k] = string(bs)
		}
	}
	return out
}
