package geom

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Property keys tried in order when pulling identity and display name out of
// a feature. Boundary files in the wild are not consistent about casing.
var (
	codeKeys = []string{"code", "CODE", "id", "ID", "ons_code", "region_code"}
	nameKeys = []string{"name", "NAME", "nm", "region_name", "label"}
)

// LoadRegions reads a GeoJSON feature collection and returns the sanitized
// boundary collection. Malformed features are skipped with a diagnostic,
// never aborting the rest of the load.
func LoadRegions(path string) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read regions: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse regions: %w", err)
	}
	col := &Collection{}
	for i, f := range fc.Features {
		g, err := sanitize(f.Geometry)
		if err != nil {
			log.Warn("skipping malformed boundary feature", "index", i, "err", err)
			continue
		}
		col.Features = append(col.Features, Feature{
			Code:     stringProp(f, codeKeys),
			Name:     stringProp(f, nameKeys),
			Geometry: g,
		})
	}
	if len(col.Features) == 0 {
		return nil, errors.New("no usable boundary features")
	}
	return col, nil
}

func stringProp(f *geojson.Feature, keys []string) string {
	for _, k := range keys {
		if s, ok := f.Properties[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// sanitize enforces the load-time geometry contract: polygonal type, finite
// coordinates inside valid degree ranges, closed rings. Open rings are
// closed by appending the first vertex; anything else rejects the feature.
func sanitize(g orb.Geometry) (orb.Geometry, error) {
	switch t := g.(type) {
	case orb.Polygon:
		p, err := sanitizePolygon(t)
		if err != nil {
			return nil, err
		}
		return p, nil
	case orb.MultiPolygon:
		out := make(orb.MultiPolygon, 0, len(t))
		for _, poly := range t {
			p, err := sanitizePolygon(poly)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported geometry %T", g)
	}
}

func sanitizePolygon(poly orb.Polygon) (orb.Polygon, error) {
	out := make(orb.Polygon, 0, len(poly))
	for _, ring := range poly {
		if len(ring) == 0 {
			continue
		}
		for _, pt := range ring {
			if !validDegrees(pt) {
				return nil, fmt.Errorf("coordinate out of range: (%v, %v)", pt[0], pt[1])
			}
		}
		if !ring.Closed() {
			ring = append(ring, ring[0])
		}
		out = append(out, ring)
	}
	return out, nil
}

func validDegrees(pt orb.Point) bool {
	lon, lat := pt[0], pt[1]
	return lon >= -180 && lon <= 180 && lat > -90 && lat < 90
}
