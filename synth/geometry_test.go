package synth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nycWKT = `POLYGON((-74.0 40.7, -73.9 40.7, -73.9 40.8, -74.0 40.8, -74.0 40.7))`

func TestParseRingWKT(t *testing.T) {
	raw, err := json.Marshal(nycWKT)
	require.NoError(t, err)

	ring, err := ParseRing(raw)
	require.NoError(t, err)
	assert.Len(t, ring, 4, "closing vertex should be dropped")
	assert.Equal(t, []float64{-74.0, 40.7}, ring[0])
}

func TestParseRingGeoJSON(t *testing.T) {
	raw := json.RawMessage(`{"type":"Polygon","coordinates":[[[-74.0,40.7],[-73.9,40.7],[-73.9,40.8],[-74.0,40.8],[-74.0,40.7]]]}`)
	ring, err := ParseRing(raw)
	require.NoError(t, err)
	assert.Len(t, ring, 4)
}

func TestParseRingGeoJSONFeature(t *testing.T) {
	raw := json.RawMessage(`{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[10,20],[11,20],[11,21],[10,20]]]}}`)
	ring, err := ParseRing(raw)
	require.NoError(t, err)
	assert.Len(t, ring, 3)
}

func TestParseRingCoordinateArrays(t *testing.T) {
	// GeoJSON-style nested rings.
	nested := json.RawMessage(`[[[0,0],[1,0],[1,1],[0,1],[0,0]]]`)
	ring, err := ParseRing(nested)
	require.NoError(t, err)
	assert.Len(t, ring, 4)

	// Bare ring, not explicitly closed.
	flat := json.RawMessage(`[[0,0],[1,0],[1,1]]`)
	ring, err = ParseRing(flat)
	require.NoError(t, err)
	assert.Len(t, ring, 3)
}

func TestParseRingRejectsMalformed(t *testing.T) {
	cases := []json.RawMessage{
		nil,
		json.RawMessage(`null`),
		json.RawMessage(`"POLYGON(("`),
		json.RawMessage(`"POINT(1 2)"`),
		json.RawMessage(`{"type":"Point","coordinates":[1,2]}`),
		json.RawMessage(`[[0,0],[1,1]]`),             // two vertices
		json.RawMessage(`[[0,0],[0,0],[0,0],[0,0]]`), // no distinct vertices
		json.RawMessage(`42`),
	}
	for _, raw := range cases {
		_, err := ParseRing(raw)
		assert.Error(t, err, "payload %s", string(raw))
	}
}

func TestCentroid(t *testing.T) {
	lat, lon := Centroid([][]float64{{-74.0, 40.7}, {-73.9, 40.7}, {-73.9, 40.8}, {-74.0, 40.8}})
	assert.InDelta(t, 40.75, lat, 1e-9)
	assert.InDelta(t, -73.95, lon, 1e-9)
}

func TestGlobalRingIsValid(t *testing.T) {
	ring, err := validRing(GlobalRing())
	require.NoError(t, err)
	assert.Len(t, ring, 4)
}
