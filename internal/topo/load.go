package topo

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"civicmap/internal/geom"
)

// LoadFile reads a layer from disk. TopoJSON files are decoded and the named
// object extracted; GeoJSON FeatureCollections are read as-is and object is
// ignored. .json files are sniffed by their "type" member.
func LoadFile(path, object string, flipY bool) ([]geom.Feature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".topojson":
		return decodeFeatures(data, object, flipY)
	case ".geojson":
		return geom.LoadGeoJSON(bytes.NewReader(data), flipY)
	case ".json":
		var head struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(data, &head); err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		if head.Type == "Topology" {
			return decodeFeatures(data, object, flipY)
		}
		return geom.LoadGeoJSON(bytes.NewReader(data), flipY)
	}
	return nil, fmt.Errorf("unsupported file: %s", ext)
}

func decodeFeatures(data []byte, object string, flipY bool) ([]geom.Feature, error) {
	t, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return t.Features(object, flipY)
}
