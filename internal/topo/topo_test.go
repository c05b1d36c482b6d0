package topo

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"civicmap/internal/geom"
)

// Two unit squares sharing the edge x=1. Arc 0 is the shared edge, arcs 1
// and 2 the outer boundaries. Quantized with scale 1 and translate 0 so
// positions are deltas.
const sampleTopology = `{
  "type": "Topology",
  "transform": {"scale": [1, 1], "translate": [0, 0]},
  "objects": {
    "states": {
      "type": "GeometryCollection",
      "geometries": [
        {"type": "Polygon", "id": "01", "properties": {"name": "West"}, "arcs": [[0, 1]]},
        {"type": "Polygon", "id": 2, "properties": {"name": "East", "STATEFP": "02"}, "arcs": [[2, -1]]},
        {"type": "MultiPolygon", "id": "03", "arcs": [[[3]], [[4]]]},
        {"type": "Polygon", "id": "99", "arcs": [[42]]},
        {"type": "Point", "id": "pt", "coordinates": [0, 0]}
      ]
    }
  },
  "arcs": [
    [[1, 0], [0, 1]],
    [[1, 1], [-1, 0], [0, -1], [1, 0]],
    [[1, 0], [1, 0], [0, 1], [-1, 0]],
    [[5, 5], [1, 0], [0, 1], [-1, 0], [0, -1]],
    [[8, 8], [1, 0], [0, 1], [-1, -1]]
  ]
}`

func decodeSample(t *testing.T) *Topology {
	t.Helper()
	topo, err := Decode(strings.NewReader(sampleTopology))
	if err != nil {
		t.Fatal(err)
	}
	return topo
}

func TestFeatures(t *testing.T) {
	fs, err := decodeSample(t).Features("states", false)
	if err != nil {
		t.Fatal(err)
	}
	if len(fs) != 5 {
		t.Fatalf("got %d features, want 5", len(fs))
	}
	tests := []struct {
		idx  int
		id   string
		path string
	}{
		{0, "01", "M1,0L1,1L0,1L0,0L1,0Z"},
		{1, "2", "M1,0L2,0L2,1L1,1L1,0Z"},
		{2, "03", "M5,5L6,5L6,6L5,6L5,5ZM8,8L9,8L9,9L8,8Z"},
		{3, "99", ""},
		{4, "pt", ""},
	}
	for _, tt := range tests {
		f := fs[tt.idx]
		if f.ID != tt.id {
			t.Errorf("feature %d id = %q, want %q", tt.idx, f.ID, tt.id)
		}
		if got := geom.Path(f.Geometry); got != tt.path {
			t.Errorf("feature %s path = %q, want %q", f.ID, got, tt.path)
		}
	}
	if fs[1].Properties["STATEFP"] != "02" {
		t.Errorf("properties = %v", fs[1].Properties)
	}
}

func TestSharedArcBounds(t *testing.T) {
	fs, err := decodeSample(t).Features("states", false)
	if err != nil {
		t.Fatal(err)
	}
	bb, err := geom.Bounds(fs[:2])
	if err != nil {
		t.Fatal(err)
	}
	if bb != (geom.BBox{MinX: 0, MinY: 0, MaxX: 2, MaxY: 1}) {
		t.Errorf("bounds = %+v", bb)
	}
}

func TestFeaturesFlipY(t *testing.T) {
	fs, err := decodeSample(t).Features("states", true)
	if err != nil {
		t.Fatal(err)
	}
	bb, ok := geom.GeometryBounds(fs[0].Geometry)
	if !ok || bb.MinY != -1 || bb.MaxY != 0 {
		t.Errorf("flipped bounds = %+v", bb)
	}
}

func TestUnquantized(t *testing.T) {
	in := `{"type":"Topology","objects":{"o":{"type":"Polygon","id":"a","arcs":[[0]]}},
	        "arcs":[[[10,10],[20,10],[20,20],[10,10]]]}`
	topo, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	fs, err := topo.Features("o", false)
	if err != nil {
		t.Fatal(err)
	}
	if got := geom.Path(fs[0].Geometry); got != "M10,10L20,10L20,20L10,10Z" {
		t.Errorf("path = %q", got)
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode(strings.NewReader(`{"type":"FeatureCollection"}`)); !errors.Is(err, ErrNotTopology) {
		t.Errorf("err = %v, want ErrNotTopology", err)
	}
	if _, err := Decode(strings.NewReader(`{`)); err == nil {
		t.Error("expected syntax error")
	}
	_, err := decodeSample(t).Features("districts", false)
	if !errors.Is(err, ErrObjectNotFound) {
		t.Errorf("err = %v, want ErrObjectNotFound", err)
	}
	if err == nil || !strings.Contains(err.Error(), "(have states)") {
		t.Errorf("err = %v, want the available objects listed", err)
	}
	if names := decodeSample(t).ObjectNames(); len(names) != 1 || names[0] != "states" {
		t.Errorf("ObjectNames = %v", names)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}
	topoPath := write("states.json", sampleTopology)
	fs, err := LoadFile(topoPath, "states", false)
	if err != nil {
		t.Fatal(err)
	}
	if len(fs) != 5 {
		t.Errorf("topology: got %d features", len(fs))
	}
	geoPath := write("one.geojson", `{"type":"FeatureCollection","features":[{"type":"Feature","id":"x","properties":{},"geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}}]}`)
	fs, err = LoadFile(geoPath, "ignored", false)
	if err != nil {
		t.Fatal(err)
	}
	if len(fs) != 1 || fs[0].ID != "x" {
		t.Errorf("geojson: %+v", fs)
	}
	if _, err := LoadFile(write("a.kml", "<kml/>"), "", false); err == nil {
		t.Error("expected unsupported file error")
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.json"), "", false); err == nil {
		t.Error("expected missing file error")
	}
}
