package geom

import "github.com/paulmach/orb"

// Feature is one named region boundary. Code is the stable identity used to
// join against the tabular dataset; it may be empty, in which case the
// region is drawn but never pickable.
type Feature struct {
	Code     string
	Name     string
	Geometry orb.Geometry // orb.Polygon or orb.MultiPolygon
}

// Collection is the full ordered set of boundaries, loaded once at startup
// and immutable afterwards.
type Collection struct {
	Features []Feature
}

// Polygons flattens a geometry into its constituent polygons. Anything that
// is not a polygon or multi-polygon flattens to nothing.
func Polygons(g orb.Geometry) []orb.Polygon {
	switch t := g.(type) {
	case orb.Polygon:
		return []orb.Polygon{t}
	case orb.MultiPolygon:
		return t
	}
	return nil
}

// EachVertex visits every coordinate of every feature, in order. It is the
// vertex source the bounds fitter scans.
func (c *Collection) EachVertex(fn func(lon, lat float64)) {
	for _, f := range c.Features {
		for _, poly := range Polygons(f.Geometry) {
			for _, ring := range poly {
				for _, pt := range ring {
					fn(pt[0], pt[1])
				}
			}
		}
	}
}

// Codes returns the identities present in the collection, in feature order,
// skipping features without one.
func (c *Collection) Codes() []string {
	var out []string
	for _, f := range c.Features {
		if f.Code != "" {
			out = append(out, f.Code)
		}
	}
	return out
}

// Find returns the feature carrying the given code.
func (c *Collection) Find(code string) (Feature, bool) {
	for _, f := range c.Features {
		if f.Code != "" && f.Code == code {
			return f, true
		}
	}
	return Feature{}, false
}
