package svgout

import (
	"bytes"
	"strings"
	"testing"

	"github.com/paulmach/orb"

	"civicmap/internal/geom"
	"civicmap/internal/mapview"
)

var vp = geom.Viewport{Width: 300, Height: 100}

func sampleView(region string) *mapview.View {
	features := []geom.Feature{
		{ID: "42", Geometry: geom.Polygon{Rings: []orb.Ring{{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}}}},
		{ID: "06", Geometry: geom.Polygon{Rings: []orb.Ring{{{20, 0}, {30, 0}, {30, 10}, {20, 0}}}}},
	}
	return mapview.New(features, mapview.Options{Region: region})
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Title = "United States"
	if err := Write(&buf, sampleView(""), vp, opts); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		`width="300" height="100"`,
		`<title>United States</title>`,
		`<g transform="matrix(10 0 0 -10 0 100)">`,
		`<path d="M0,0L10,0L10,10L0,10L0,0Z" id="region-42" fill="#9333ea" stroke="#6b21a8"`,
		`id="region-06" fill="#2563eb"`,
		`vector-effect="non-scaling-stroke"`,
		`</svg>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "<path "); n != 2 {
		t.Errorf("got %d paths, want 2", n)
	}
}

func TestWritePlaceholder(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleView("56"), vp, DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, "<path") || !strings.Contains(out, "No map data") {
		t.Errorf("placeholder output:\n%s", out)
	}
}

func TestMatrix(t *testing.T) {
	tests := []struct {
		fit  geom.Fit
		want string
	}{
		{geom.Fit{Scale: 1, TranslateY: 100}, "matrix(1 0 0 -1 0 100)"},
		{geom.Fit{Scale: 2.5, TranslateX: -3.25, TranslateY: 7}, "matrix(2.5 0 0 -2.5 -3.25 7)"},
	}
	for _, tt := range tests {
		if got := Matrix(tt.fit); got != tt.want {
			t.Errorf("Matrix(%+v) = %q, want %q", tt.fit, got, tt.want)
		}
	}
}
