package geom

import (
	"errors"
	"strings"
	"testing"

	"github.com/paulmach/orb"
)

func districts() []Feature {
	return []Feature{
		{ID: "4201", Geometry: Polygon{Rings: []orb.Ring{rect(0, 0, 1, 1)}}, Properties: map[string]string{"STATEFP": "42"}},
		{ID: "4202", Geometry: Polygon{Rings: []orb.Ring{rect(1, 0, 2, 1)}}, Properties: map[string]string{"STATEFP": "42"}},
		{ID: "0601", Geometry: Polygon{Rings: []orb.Ring{rect(5, 5, 6, 6)}}, Properties: map[string]string{"STATEFP": "06"}},
	}
}

func TestFilterByRegion(t *testing.T) {
	tests := []struct {
		name   string
		region string
		key    JoinKey
		want   []string
	}{
		{"by property", "42", ByProperty("STATEFP"), []string{"4201", "4202"}},
		{"by id", "0601", ByID, []string{"0601"}},
		{"id is not a property", "42", ByID, nil},
		{"missing property", "42", ByProperty("GEOID"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByRegion(districts(), tt.region, tt.key)
			var ids []string
			for _, f := range got {
				ids = append(ids, f.ID)
			}
			if strings.Join(ids, ",") != strings.Join(tt.want, ",") {
				t.Errorf("got %v, want %v", ids, tt.want)
			}
		})
	}
}

func TestFilterUnknownRegionChainsToNoData(t *testing.T) {
	got := FilterByRegion(districts(), "99", ByProperty("STATEFP"))
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
	if _, err := Bounds(got); !errors.Is(err, ErrNoData) {
		t.Errorf("Bounds err = %v, want ErrNoData", err)
	}
}
