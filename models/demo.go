package models

import (
	"encoding/json"
	"time"
)

// ClimateArchetype is one of a few coarse climate classes the demo generator
// distinguishes. Deliberately not a real climate model.
type ClimateArchetype string

const (
	ArchetypeTropical    ClimateArchetype = "tropical"
	ArchetypeSubtropical ClimateArchetype = "subtropical"
	ArchetypeTemperate   ClimateArchetype = "temperate"
	ArchetypeArid        ClimateArchetype = "arid"
	ArchetypeArctic      ClimateArchetype = "arctic"
)

// ClimateProfile carries the per-region baselines every synthetic variable is
// derived from. Built once per request and never mutated afterwards.
type ClimateProfile struct {
	Archetype            ClimateArchetype `json:"archetype"`
	BaselineTemperatureC float64          `json:"baseline_temperature_c"`
	VegetationDensity    float64          `json:"vegetation_density"` // 0..1
	CentroidLat          float64          `json:"centroid_lat"`
	CentroidLon          float64          `json:"centroid_lon"`
}

// AnalysisType selects which variables a demo run synthesizes.
type AnalysisType string

const (
	AnalysisNDVI          AnalysisType = "ndvi"
	AnalysisLST           AnalysisType = "lst"
	AnalysisSAR           AnalysisType = "sar"
	AnalysisComprehensive AnalysisType = "comprehensive"
)

// Valid reports whether t is one of the supported analysis types.
func (t AnalysisType) Valid() bool {
	switch t {
	case AnalysisNDVI, AnalysisLST, AnalysisSAR, AnalysisComprehensive:
		return true
	}
	return false
}

// Variables returns the variables synthesized for this analysis type, in the
// fixed ndvi, lst, backscatter order used by exports.
func (t AnalysisType) Variables() []AnalysisVariable {
	switch t {
	case AnalysisNDVI:
		return []AnalysisVariable{VariableNDVI}
	case AnalysisLST:
		return []AnalysisVariable{VariableLST}
	case AnalysisSAR:
		return []AnalysisVariable{VariableBackscatter}
	default:
		return []AnalysisVariable{VariableNDVI, VariableLST, VariableBackscatter}
	}
}

// Label returns the human-readable name shown in result metadata.
func (t AnalysisType) Label() string {
	switch t {
	case AnalysisNDVI:
		return "NDVI Vegetation Index"
	case AnalysisLST:
		return "Land Surface Temperature"
	case AnalysisSAR:
		return "SAR Backscatter"
	default:
		return "Comprehensive Analysis"
	}
}

// AnalysisVariable names a single synthesized observable.
type AnalysisVariable string

const (
	VariableNDVI        AnalysisVariable = "ndvi"
	VariableLST         AnalysisVariable = "lst"
	VariableBackscatter AnalysisVariable = "backscatter"
)

// AnalysisRequest is the pipeline input assembled from the demo form. It is
// consumed by one Generate call and then discarded.
type AnalysisRequest struct {
	// Geometry holds the area of interest as the client sent it: a WKT string,
	// a GeoJSON geometry object, or a nested coordinate array. Empty means
	// "no area drawn" and triggers the global fallback polygon.
	Geometry json.RawMessage `json:"geometry,omitempty"`

	AnalysisType         AnalysisType `json:"analysisType"`
	Start                time.Time    `json:"start"`
	End                  time.Time    `json:"end"`
	Satellite            string       `json:"satellite,omitempty"` // informational, tags image ids
	ObservationsPerMonth int          `json:"observationsPerMonth,omitempty"`
	MaxCloudCoverPct     float64      `json:"maxCloudCover,omitempty"`
	CloudMasking         bool         `json:"cloudMasking,omitempty"`
	MaskingStrictness    string       `json:"maskingStrictness,omitempty"`
}

// ObservationPoint is one synthetic acquisition. Variables not requested for
// the run stay nil.
type ObservationPoint struct {
	Date          time.Time `json:"date"`
	DayOfYear     int       `json:"day_of_year"`
	ImageID       string    `json:"image_id"`
	NDVI          *float64  `json:"ndvi,omitempty"`
	LSTDegC       *float64  `json:"lst_deg_c,omitempty"`
	BackscatterDb *float64  `json:"backscatter_db,omitempty"`

	OriginalCloudCoverPct  float64 `json:"cloud_cover_pct"`
	EffectiveCloudCoverPct float64 `json:"effective_cloud_cover_pct"`
	MaskingApplied         bool    `json:"masking_applied"`
}

// Value returns the point's value for the given variable, nil when absent.
func (p *ObservationPoint) Value(v AnalysisVariable) *float64 {
	switch v {
	case VariableNDVI:
		return p.NDVI
	case VariableLST:
		return p.LSTDegC
	case VariableBackscatter:
		return p.BackscatterDb
	}
	return nil
}

// SeriesStatistics summarizes the non-nil values of one variable.
type SeriesStatistics struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	Count  int     `json:"count"`
}

// ResultMetadata describes what the demo run actually computed, including the
// polygon the data represents (the fallback ring when none was supplied).
type ResultMetadata struct {
	TotalObservations int              `json:"total_observations"`
	DateRangeLabel    string           `json:"date_range_label"`
	MaskingApplied    bool             `json:"masking_applied"`
	AnalysisTypeLabel string           `json:"analysis_type_label"`
	Archetype         ClimateArchetype `json:"archetype"`
	Satellite         string           `json:"satellite"`
	PolygonUsed       [][]float64      `json:"polygon_used"` // lon,lat outer ring
	PolygonFallback   bool             `json:"polygon_fallback"`
}

// ResultBundle is the full demo output handed to the UI and export layers.
type ResultBundle struct {
	Series     []ObservationPoint                     `json:"series"`
	Variables  []AnalysisVariable                     `json:"variables"`
	Statistics map[AnalysisVariable]*SeriesStatistics `json:"statistics"`
	Metadata   ResultMetadata                         `json:"metadata"`
}
