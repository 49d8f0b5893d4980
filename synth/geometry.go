package synth

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkt"
)

var errNoGeometry = errors.New("no geometry supplied")

// ParseRing extracts a flat lon/lat outer ring from whatever geometry the demo
// form sent: a WKT string, a GeoJSON geometry (or single Feature), or a nested
// coordinate array. Only the outer ring of the first polygon is used; holes and
// extra features are ignored on purpose.
func ParseRing(raw json.RawMessage) ([][]float64, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, errNoGeometry
	}

	var ring [][]float64
	var err error
	switch trimmed[0] {
	case '"':
		var s string
		if err = json.Unmarshal(trimmed, &s); err != nil {
			return nil, fmt.Errorf("geometry string: %w", err)
		}
		ring, err = ringFromWKT(s)
	case '{':
		ring, err = ringFromGeoJSON(trimmed)
	case '[':
		ring, err = ringFromArray(trimmed)
	default:
		return nil, fmt.Errorf("unrecognized geometry payload")
	}
	if err != nil {
		return nil, err
	}
	return validRing(ring)
}

func ringFromWKT(s string) ([][]float64, error) {
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return nil, fmt.Errorf("parse wkt: %w", err)
	}
	return ringFromGeom(g)
}

func ringFromGeoJSON(data []byte) ([][]float64, error) {
	var g geom.T
	if err := geojson.Unmarshal(data, &g); err == nil {
		return ringFromGeom(g)
	}
	// Maybe a Feature wrapper; unwrap once and retry.
	var feat struct {
		Geometry json.RawMessage `json:"geometry"`
	}
	if err := json.Unmarshal(data, &feat); err != nil || len(feat.Geometry) == 0 {
		return nil, fmt.Errorf("parse geojson: unsupported shape")
	}
	var inner geom.T
	if err := geojson.Unmarshal(feat.Geometry, &inner); err != nil {
		return nil, fmt.Errorf("parse geojson feature: %w", err)
	}
	return ringFromGeom(inner)
}

func ringFromGeom(g geom.T) ([][]float64, error) {
	switch p := g.(type) {
	case *geom.Polygon:
		return coordsToRing(p.Coords())
	case *geom.MultiPolygon:
		if p.NumPolygons() == 0 {
			return nil, fmt.Errorf("empty multipolygon")
		}
		return coordsToRing(p.Polygon(0).Coords())
	}
	return nil, fmt.Errorf("geometry is not a polygon")
}

func coordsToRing(rings [][]geom.Coord) ([][]float64, error) {
	if len(rings) == 0 {
		return nil, fmt.Errorf("polygon has no rings")
	}
	out := make([][]float64, 0, len(rings[0]))
	for _, c := range rings[0] {
		if len(c) < 2 {
			return nil, fmt.Errorf("coordinate with fewer than 2 components")
		}
		out = append(out, []float64{c[0], c[1]})
	}
	return out, nil
}

// ringFromArray accepts both a bare ring [[lon,lat],...] and GeoJSON-style
// polygon coordinates [[[lon,lat],...],...].
func ringFromArray(data []byte) ([][]float64, error) {
	var nested [][][]float64
	if err := json.Unmarshal(data, &nested); err == nil && len(nested) > 0 {
		return nested[0], nil
	}
	var flat [][]float64
	if err := json.Unmarshal(data, &flat); err != nil {
		return nil, fmt.Errorf("parse coordinate array: %w", err)
	}
	return flat, nil
}

// validRing drops an explicit closing vertex and requires at least 3 distinct
// points.
func validRing(ring [][]float64) ([][]float64, error) {
	for _, pt := range ring {
		if len(pt) < 2 {
			return nil, fmt.Errorf("coordinate pair with fewer than 2 components")
		}
	}
	if n := len(ring); n > 1 && ring[0][0] == ring[n-1][0] && ring[0][1] == ring[n-1][1] {
		ring = ring[:n-1]
	}
	distinct := map[[2]float64]struct{}{}
	for _, pt := range ring {
		distinct[[2]float64{pt[0], pt[1]}] = struct{}{}
	}
	if len(distinct) < 3 {
		return nil, fmt.Errorf("polygon needs at least 3 distinct vertices, got %d", len(distinct))
	}
	return ring, nil
}

// Centroid is the arithmetic mean of the ring's vertices. Good enough for
// picking a climate archetype; not an area-weighted centroid.
func Centroid(ring [][]float64) (lat, lon float64) {
	if len(ring) == 0 {
		return 0, 0
	}
	for _, pt := range ring {
		lon += pt[0]
		lat += pt[1]
	}
	n := float64(len(ring))
	return lat / n, lon / n
}

// GlobalRing is the full-globe fallback area used when the visitor drew
// nothing. Latitude stops at ±85 to stay inside web-mercator map bounds.
func GlobalRing() [][]float64 {
	return [][]float64{
		{-180, -85},
		{180, -85},
		{180, 85},
		{-180, 85},
		{-180, -85},
	}
}
