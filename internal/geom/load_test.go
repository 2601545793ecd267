package geom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
)

const fixture = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"code": "R1", "name": "Alpha"},
      "geometry": {"type": "Polygon", "coordinates": [[[0,0],[4,0],[4,4],[0,4],[0,0]]]}
    },
    {
      "type": "Feature",
      "properties": {"code": "R2", "name": "Beta"},
      "geometry": {"type": "Polygon", "coordinates": [[[10,10],[14,10],[14,14],[10,14]]]}
    },
    {
      "type": "Feature",
      "properties": {"code": "R3", "name": "Broken"},
      "geometry": {"type": "Polygon", "coordinates": [[[0,95],[1,95],[1,96],[0,95]]]}
    },
    {
      "type": "Feature",
      "properties": {},
      "geometry": {"type": "MultiPolygon", "coordinates": [[[[20,20],[24,20],[24,24],[20,20]]]]}
    }
  ]
}`

func writeFixture(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "regions.geojson")
	if err := os.WriteFile(p, []byte(fixture), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadRegions(t *testing.T) {
	col, err := LoadRegions(writeFixture(t))
	if err != nil {
		t.Fatal(err)
	}
	// R3 is rejected (latitude beyond the pole-safe range); the rest load.
	if len(col.Features) != 3 {
		t.Fatalf("expected 3 features, got %d", len(col.Features))
	}
	if got := col.Codes(); len(got) != 2 || got[0] != "R1" || got[1] != "R2" {
		t.Fatalf("codes = %v", got)
	}
	f, ok := col.Find("R2")
	if !ok || f.Name != "Beta" {
		t.Fatalf("Find(R2) = %+v, %v", f, ok)
	}
}

func TestLoadClosesOpenRings(t *testing.T) {
	col, err := LoadRegions(writeFixture(t))
	if err != nil {
		t.Fatal(err)
	}
	f, _ := col.Find("R2")
	for _, poly := range Polygons(f.Geometry) {
		for _, ring := range poly {
			if !ring.Closed() {
				t.Fatal("loader must close open rings")
			}
		}
	}
}

func TestEachVertexOrder(t *testing.T) {
	col := &Collection{Features: []Feature{
		{Code: "A", Geometry: orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}},
	}}
	var n int
	col.EachVertex(func(lon, lat float64) { n++ })
	if n != 4 {
		t.Fatalf("expected 4 vertices, got %d", n)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadRegions(filepath.Join(t.TempDir(), "nope.geojson")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
